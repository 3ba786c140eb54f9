package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// AuthAPI covers the upstream authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)
	Register(ctx context.Context, in RegisterInput) (*domain.Credentials, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*domain.User, error)
}
