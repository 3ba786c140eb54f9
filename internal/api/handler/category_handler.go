package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// CategoryHandler serves the admin insight category management pages.
type CategoryHandler struct {
	content ports.ContentAPI
}

func NewCategoryHandler(content ports.ContentAPI) *CategoryHandler {
	return &CategoryHandler{content: content}
}

type categoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

func (h *CategoryHandler) List(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.content.Categories(c.Request().Context(), session.Token, queryPage(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *CategoryHandler) Get(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	category, err := h.content.Category(c.Request().Context(), session.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.content.CreateCategory(c.Request().Context(), session.Token, ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.content.UpdateCategory(c.Request().Context(), session.Token, id, ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

// Delete removes a category. Deleting one that still has posts surfaces the
// upstream conflict untouched.
func (h *CategoryHandler) Delete(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.content.DeleteCategory(c.Request().Context(), session.Token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
