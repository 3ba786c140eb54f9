package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// CategoryInput carries a category create or update.
type CategoryInput struct {
	Name        string
	Description *string
}

// PostInput carries a post create; for updates, nil fields are left
// untouched upstream.
type PostInput struct {
	CategoryID    *int64
	Title         *string
	Body          *string
	FeaturedImage *string
	IsFeatured    *bool
}

// ContentAPI covers the authenticated category and post management
// endpoints.
type ContentAPI interface {
	Categories(ctx context.Context, token string, page int) (*domain.Page[domain.Category], error)
	Category(ctx context.Context, token string, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, token string, in CategoryInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, token string, id int64, in CategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, token string, id int64) error

	Posts(ctx context.Context, token string, page int) (*domain.Page[domain.Post], error)
	Post(ctx context.Context, token string, id int64) (*domain.Post, error)
	CreatePost(ctx context.Context, token string, in PostInput) (*domain.Post, error)
	UpdatePost(ctx context.Context, token string, id int64, in PostInput) (*domain.Post, error)
	DeletePost(ctx context.Context, token string, id int64) error

	// UploadImage stores a featured or in-body post image and returns its
	// storage path.
	UploadImage(ctx context.Context, token string, image Upload) (string, error)
}
