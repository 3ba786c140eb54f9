package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type commentBody struct {
	AuthorName  *string `json:"author_name,omitempty"`
	AuthorEmail *string `json:"author_email,omitempty"`
	Body        string  `json:"body"`
}

// PublicCategories lists categories with their post counts; no auth header
// is attached.
func (c *Client) PublicCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	err := c.do(ctx, call{
		op:     "public_categories",
		method: http.MethodGet,
		path:   "/api/public/categories",
		out:    &categories,
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// PublicFeaturedPosts lists up to limit featured posts.
func (c *Client) PublicFeaturedPosts(ctx context.Context, limit int) ([]domain.Post, error) {
	if limit <= 0 {
		limit = 5
	}
	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))

	var posts []domain.Post
	err := c.do(ctx, call{
		op:     "public_featured_posts",
		method: http.MethodGet,
		path:   "/api/public/posts/featured",
		query:  query,
		out:    &posts,
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// PublicPosts lists published posts for the insights pages.
func (c *Client) PublicPosts(ctx context.Context, filter ports.PublicPostFilter) (*domain.Page[domain.Post], error) {
	query := url.Values{}
	if filter.CategoryID != nil {
		query.Set("category_id", strconv.FormatInt(*filter.CategoryID, 10))
	}
	if filter.Page != nil {
		query.Set("page", strconv.Itoa(*filter.Page))
	}
	if filter.PerPage != nil {
		query.Set("per_page", strconv.Itoa(*filter.PerPage))
	}

	var result domain.Page[domain.Post]
	err := c.do(ctx, call{
		op:     "public_posts",
		method: http.MethodGet,
		path:   "/api/public/posts",
		query:  query,
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// PublicPostBySlug fetches one published post.
func (c *Client) PublicPostBySlug(ctx context.Context, slug string) (*domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, call{
		op:     "public_post_by_slug",
		method: http.MethodGet,
		path:   "/api/public/posts/slug/" + url.PathEscape(slug),
		out:    &post,
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// PublicPostComments lists a post's comments.
func (c *Client) PublicPostComments(ctx context.Context, slug string) ([]domain.PostComment, error) {
	var comments []domain.PostComment
	err := c.do(ctx, call{
		op:     "public_post_comments",
		method: http.MethodGet,
		path:   "/api/public/posts/slug/" + url.PathEscape(slug) + "/comments",
		out:    &comments,
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CreatePublicPostComment posts a comment. The token is optional: signed-in
// users send it and omit the author fields, upstream then attributes the
// comment to the token's account.
func (c *Client) CreatePublicPostComment(ctx context.Context, token, slug string, in ports.CommentInput) (*ports.CreatedComment, error) {
	var created ports.CreatedComment
	err := c.do(ctx, call{
		op:     "create_public_post_comment",
		method: http.MethodPost,
		path:   "/api/public/posts/slug/" + url.PathEscape(slug) + "/comments",
		token:  token,
		body: commentBody{
			AuthorName:  in.AuthorName,
			AuthorEmail: in.AuthorEmail,
			Body:        in.Body,
		},
		out: &created,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}
