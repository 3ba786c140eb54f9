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

// Dashboard fetches the role-dependent counters for the landing page.
func (c *Client) Dashboard(ctx context.Context, token string) (*domain.DashboardCounts, error) {
	var counts domain.DashboardCounts
	err := c.do(ctx, call{
		op:     "dashboard",
		method: http.MethodGet,
		path:   "/api/dashboard",
		token:  token,
		out:    &counts,
	})
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

// Users lists accounts, optionally filtered by role, status and page.
func (c *Client) Users(ctx context.Context, token string, filter ports.UserFilter) (*domain.Page[domain.User], error) {
	query := url.Values{}
	if filter.Role != "" {
		query.Set("role", filter.Role)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}

	var page domain.Page[domain.User]
	err := c.do(ctx, call{
		op:     "list_users",
		method: http.MethodGet,
		path:   "/api/users",
		token:  token,
		query:  query,
		out:    &page,
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// User fetches a single account by id.
func (c *Client) User(ctx context.Context, token string, id int64) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, call{
		op:     "get_user",
		method: http.MethodGet,
		path:   fmt.Sprintf("/api/users/%d", id),
		token:  token,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ApproveUser moves a pending investor to approved.
func (c *Client) ApproveUser(ctx context.Context, token string, id int64) (*domain.User, error) {
	return c.userAction(ctx, "approve_user", token, id, "approve")
}

// RejectUser moves an investor to rejected.
func (c *Client) RejectUser(ctx context.Context, token string, id int64) (*domain.User, error) {
	return c.userAction(ctx, "reject_user", token, id, "reject")
}

func (c *Client) userAction(ctx context.Context, op, token string, id int64, action string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, call{
		op:     op,
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/users/%d/%s", id, action),
		token:  token,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
