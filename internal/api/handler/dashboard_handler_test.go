package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/ravokstudios/investor-portal/internal/api/middleware"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type stubDirectoryAPI struct {
	dashboardFn func(ctx context.Context, token string) (*domain.DashboardCounts, error)
	usersFn     func(ctx context.Context, token string, filter ports.UserFilter) (*domain.Page[domain.User], error)
}

func (s *stubDirectoryAPI) Dashboard(ctx context.Context, token string) (*domain.DashboardCounts, error) {
	return s.dashboardFn(ctx, token)
}

func (s *stubDirectoryAPI) Users(ctx context.Context, token string, filter ports.UserFilter) (*domain.Page[domain.User], error) {
	return s.usersFn(ctx, token, filter)
}

func (s *stubDirectoryAPI) User(context.Context, string, int64) (*domain.User, error) {
	panic("not used")
}

func (s *stubDirectoryAPI) ApproveUser(context.Context, string, int64) (*domain.User, error) {
	panic("not used")
}

func (s *stubDirectoryAPI) RejectUser(context.Context, string, int64) (*domain.User, error) {
	panic("not used")
}

func adminSession() *domain.Session {
	return &domain.Session{
		Token: "admin-token",
		User:  &domain.User{ID: 1, Role: domain.RoleAdmin, Status: domain.StatusApproved},
	}
}

func TestDashboardHandler_AdminOverview(t *testing.T) {
	users := int64(12)
	stub := &stubDirectoryAPI{
		dashboardFn: func(ctx context.Context, token string) (*domain.DashboardCounts, error) {
			if token != "admin-token" {
				t.Fatalf("unexpected token: %q", token)
			}
			counts := &domain.DashboardCounts{Role: domain.RoleAdmin}
			counts.Counts.Users = &users
			return counts, nil
		},
		usersFn: func(ctx context.Context, token string, filter ports.UserFilter) (*domain.Page[domain.User], error) {
			if filter.Role != domain.RoleInvestor || filter.Status != domain.StatusPending || filter.Page != 1 {
				t.Fatalf("unexpected filter: %+v", filter)
			}
			return &domain.Page[domain.User]{
				Data:        []domain.User{{ID: 2, Name: "Bob", Status: domain.StatusPending}},
				CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 1,
			}, nil
		},
	}
	handler := NewDashboardHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/admin", "")
	c.Set(middleware.ContextSessionID, "s1")
	c.Set(middleware.ContextSession, adminSession())

	if err := handler.AdminOverview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := resp["counts"]; !ok {
		t.Fatal("expected counts in response")
	}
	pending, ok := resp["pending_investors"].(map[string]any)
	if !ok {
		t.Fatal("expected pending_investors in response")
	}
	if total, _ := pending["total"].(float64); total != 1 {
		t.Fatalf("unexpected pending total: %v", pending["total"])
	}
}

func TestDashboardHandler_AdminOverview_EitherFetchFailureFails(t *testing.T) {
	stub := &stubDirectoryAPI{
		dashboardFn: func(ctx context.Context, token string) (*domain.DashboardCounts, error) {
			return &domain.DashboardCounts{Role: domain.RoleAdmin}, nil
		},
		usersFn: func(ctx context.Context, token string, filter ports.UserFilter) (*domain.Page[domain.User], error) {
			return nil, errors.New("upstream down")
		},
	}
	handler := NewDashboardHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/admin", "")
	c.Set(middleware.ContextSessionID, "s1")
	c.Set(middleware.ContextSession, adminSession())

	if err := handler.AdminOverview(c); err == nil {
		t.Fatal("expected error when one of the fetches fails")
	}
}

func TestDashboardHandler_InvestorOverview(t *testing.T) {
	posts := int64(4)
	stub := &stubDirectoryAPI{
		dashboardFn: func(ctx context.Context, token string) (*domain.DashboardCounts, error) {
			counts := &domain.DashboardCounts{Role: domain.RoleInvestor}
			counts.Counts.Posts = &posts
			return counts, nil
		},
	}
	handler := NewDashboardHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/investor", "")
	c.Set(middleware.ContextSessionID, "s1")
	c.Set(middleware.ContextSession, &domain.Session{
		Token: "t",
		User:  &domain.User{ID: 3, Name: "Ivy", Role: domain.RoleInvestor, Status: domain.StatusApproved},
	})

	if err := handler.InvestorOverview(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Ivy" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}
