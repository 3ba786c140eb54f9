package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// RegisterInput carries a new investor registration.
type RegisterInput struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// StartedSession is the result of a successful login or registration: a
// persisted session plus the signed cookie value that references it.
type StartedSession struct {
	ID     string
	Cookie string
	User   *domain.User
	Area   domain.Area
}

// SessionService orchestrates the session lifecycle against the upstream API
// and the session store.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*StartedSession, error)
	Register(ctx context.Context, in RegisterInput) (*StartedSession, error)

	// Logout notifies upstream on a best-effort basis and always clears the
	// stored session; an upstream failure never blocks the local sign-out.
	Logout(ctx context.Context, sessionID string, session *domain.Session) error

	// Reconcile fetches the canonical user record from upstream, overwrites
	// the cached snapshot, and returns the fresh copy.
	Reconcile(ctx context.Context, sessionID string, session *domain.Session) (*domain.User, error)
}
