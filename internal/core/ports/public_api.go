package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// PublicPostFilter narrows the public insights listing.
type PublicPostFilter struct {
	CategoryID *int64
	Page       *int
	PerPage    *int
}

// CommentInput carries a new public comment. Author fields are omitted for
// signed-in users; upstream then attributes the comment to the token's user.
type CommentInput struct {
	AuthorName  *string
	AuthorEmail *string
	Body        string
}

// CreatedComment is the upstream acknowledgement for a new comment.
type CreatedComment struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// PublicAPI covers the unauthenticated insights endpoints. No bearer header
// is attached except for comment creation by a signed-in user.
type PublicAPI interface {
	PublicCategories(ctx context.Context) ([]domain.Category, error)
	PublicFeaturedPosts(ctx context.Context, limit int) ([]domain.Post, error)
	PublicPosts(ctx context.Context, filter PublicPostFilter) (*domain.Page[domain.Post], error)
	PublicPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
	PublicPostComments(ctx context.Context, slug string) ([]domain.PostComment, error)
	CreatePublicPostComment(ctx context.Context, token, slug string, in CommentInput) (*CreatedComment, error)
}
