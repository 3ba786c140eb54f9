package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type DashboardHandler struct {
	directory ports.DirectoryAPI
}

func NewDashboardHandler(directory ports.DirectoryAPI) *DashboardHandler {
	return &DashboardHandler{directory: directory}
}

type adminOverviewResponse struct {
	Counts           *domain.DashboardCounts   `json:"counts"`
	PendingInvestors *domain.Page[domain.User] `json:"pending_investors"`
}

// AdminOverview serves the admin landing page: the dashboard counters and
// the first page of pending investors, fetched in parallel. Both must
// complete before rendering; their relative completion order is immaterial.
func (h *DashboardHandler) AdminOverview(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var (
		counts  *domain.DashboardCounts
		pending *domain.Page[domain.User]
	)

	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		counts, err = h.directory.Dashboard(ctx, session.Token)
		return err
	})
	g.Go(func() error {
		var err error
		pending, err = h.directory.Users(ctx, session.Token, ports.UserFilter{
			Role:   domain.RoleInvestor,
			Status: domain.StatusPending,
			Page:   1,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, adminOverviewResponse{Counts: counts, PendingInvestors: pending})
}

type investorOverviewResponse struct {
	User   *domain.User            `json:"user"`
	Counts *domain.DashboardCounts `json:"counts"`
}

// InvestorOverview serves the investor landing page.
func (h *DashboardHandler) InvestorOverview(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	counts, err := h.directory.Dashboard(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, investorOverviewResponse{User: session.User, Counts: counts})
}
