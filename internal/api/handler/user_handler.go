package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// UserHandler serves the admin user directory and the investor approval
// workflow.
type UserHandler struct {
	directory ports.DirectoryAPI
}

func NewUserHandler(directory ports.DirectoryAPI) *UserHandler {
	return &UserHandler{directory: directory}
}

// List serves GET /admin/users with optional role, status and page filters.
func (h *UserHandler) List(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.directory.Users(c.Request().Context(), session.Token, ports.UserFilter{
		Role:   c.QueryParam("role"),
		Status: c.QueryParam("status"),
		Page:   queryPage(c),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get serves GET /admin/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.directory.User(c.Request().Context(), session.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Approve serves POST /admin/users/:id/approve.
func (h *UserHandler) Approve(c echo.Context) error {
	return h.transition(c, h.directory.ApproveUser)
}

// Reject serves POST /admin/users/:id/reject.
func (h *UserHandler) Reject(c echo.Context) error {
	return h.transition(c, h.directory.RejectUser)
}

func (h *UserHandler) transition(c echo.Context, apply func(context.Context, string, int64) (*domain.User, error)) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := apply(c.Request().Context(), session.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
