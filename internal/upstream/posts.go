package upstream

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type postBody struct {
	CategoryID    *int64  `json:"category_id,omitempty"`
	Title         *string `json:"title,omitempty"`
	Body          *string `json:"body,omitempty"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	IsFeatured    *bool   `json:"is_featured,omitempty"`
}

// Posts lists posts one page at a time.
func (c *Client) Posts(ctx context.Context, token string, page int) (*domain.Page[domain.Post], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var result domain.Page[domain.Post]
	err := c.do(ctx, call{
		op:     "list_posts",
		method: http.MethodGet,
		path:   "/api/posts",
		token:  token,
		query:  query,
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Post fetches one post by id.
func (c *Client) Post(ctx context.Context, token string, id int64) (*domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, call{
		op:     "get_post",
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/posts/%d", id),
		token:  token,
		out:    &post,
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost adds a post.
func (c *Client) CreatePost(ctx context.Context, token string, in ports.PostInput) (*domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, call{
		op:     "create_post",
		method: http.MethodPost,
		path:   "/api/posts",
		token:  token,
		body:   postBodyFrom(in),
		out:    &post,
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost edits a post; nil fields are left untouched upstream.
func (c *Client) UpdatePost(ctx context.Context, token string, id int64, in ports.PostInput) (*domain.Post, error) {
	var post domain.Post
	err := c.do(ctx, call{
		op:     "update_post",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/posts/%d", id),
		token:  token,
		body:   postBodyFrom(in),
		out:    &post,
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost removes a post. Upstream answers 204 on success.
func (c *Client) DeletePost(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		op:     "delete_post",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/posts/%d", id),
		token:  token,
	})
}

// UploadImage stores a post image and returns its storage path.
func (c *Client) UploadImage(ctx context.Context, token string, image ports.Upload) (string, error) {
	var result struct {
		Path string `json:"path"`
	}
	err := c.doMultipart(ctx, "upload_image", "/api/upload/image", token, func(w *multipart.Writer) error {
		return writeUpload(w, "image", image)
	}, &result)
	if err != nil {
		return "", err
	}
	return result.Path, nil
}

func postBodyFrom(in ports.PostInput) postBody {
	return postBody{
		CategoryID:    in.CategoryID,
		Title:         in.Title,
		Body:          in.Body,
		FeaturedImage: in.FeaturedImage,
		IsFeatured:    in.IsFeatured,
	}
}
