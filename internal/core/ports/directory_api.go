package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// UserFilter narrows the admin user listing. Zero values are omitted from
// the upstream query.
type UserFilter struct {
	Role   string
	Status string
	Page   int
}

// DirectoryAPI covers dashboard counts and the admin user directory,
// including the investor approval workflow.
type DirectoryAPI interface {
	Dashboard(ctx context.Context, token string) (*domain.DashboardCounts, error)
	Users(ctx context.Context, token string, filter UserFilter) (*domain.Page[domain.User], error)
	User(ctx context.Context, token string, id int64) (*domain.User, error)
	ApproveUser(ctx context.Context, token string, id int64) (*domain.User, error)
	RejectUser(ctx context.Context, token string, id int64) (*domain.User, error)
}
