package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type categoryBody struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// Categories lists post categories one page at a time.
func (c *Client) Categories(ctx context.Context, token string, page int) (*domain.Page[domain.Category], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}

	var result domain.Page[domain.Category]
	err := c.do(ctx, call{
		op:     "list_categories",
		method: http.MethodGet,
		path:   "/api/categories",
		token:  token,
		query:  query,
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Category fetches one category by id.
func (c *Client) Category(ctx context.Context, token string, id int64) (*domain.Category, error) {
	var category domain.Category
	err := c.do(ctx, call{
		op:     "get_category",
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/categories/%d", id),
		token:  token,
		out:    &category,
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory adds a category.
func (c *Client) CreateCategory(ctx context.Context, token string, in ports.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	err := c.do(ctx, call{
		op:     "create_category",
		method: http.MethodPost,
		path:   "/api/categories",
		token:  token,
		body:   categoryBody{Name: in.Name, Description: in.Description},
		out:    &category,
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory edits a category.
func (c *Client) UpdateCategory(ctx context.Context, token string, id int64, in ports.CategoryInput) (*domain.Category, error) {
	var category domain.Category
	err := c.do(ctx, call{
		op:     "update_category",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/categories/%d", id),
		token:  token,
		body:   categoryBody{Name: in.Name, Description: in.Description},
		out:    &category,
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category. Upstream answers 204 on success.
func (c *Client) DeleteCategory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		op:     "delete_category",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/categories/%d", id),
		token:  token,
	})
}
