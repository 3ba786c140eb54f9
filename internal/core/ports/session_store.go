package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// SessionStore persists the per-browser session (bearer token + cached user
// snapshot) between requests. Read returns (nil, nil) when no session exists
// or the stored payload cannot be decoded; only infrastructure failures are
// reported as errors. No TTL is enforced beyond the store's own expiry; a
// revoked upstream token is only discovered on the next upstream call.
type SessionStore interface {
	Read(ctx context.Context, id string) (*domain.Session, error)
	Write(ctx context.Context, id string, session *domain.Session) error
	Clear(ctx context.Context, id string) error
}
