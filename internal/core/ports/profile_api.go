package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// ProfileInput carries a profile edit. Nil fields are left untouched
// upstream.
type ProfileInput struct {
	Name  *string
	Phone *string
	Bio   *string
}

// PasswordInput carries a password change for the current user.
type PasswordInput struct {
	CurrentPassword      string
	Password             string
	PasswordConfirmation string
}

// ProfileAPI covers the current user's profile endpoints.
type ProfileAPI interface {
	Profile(ctx context.Context, token string) (*domain.User, error)
	UpdateProfile(ctx context.Context, token string, in ProfileInput) (*domain.User, error)

	// UpdateProfileWithAvatar sends the edit as multipart form data with a
	// method override, the upstream API's convention for file-bearing updates.
	UpdateProfileWithAvatar(ctx context.Context, token string, in ProfileInput, avatar Upload) (*domain.User, error)

	ChangePassword(ctx context.Context, token string, in PasswordInput) error
}
