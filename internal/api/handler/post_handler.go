package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// PostHandler serves the admin insight post management pages.
type PostHandler struct {
	content ports.ContentAPI
}

func NewPostHandler(content ports.ContentAPI) *PostHandler {
	return &PostHandler{content: content}
}

type createPostRequest struct {
	CategoryID    int64   `json:"category_id" validate:"required,gt=0"`
	Title         string  `json:"title" validate:"required"`
	Body          string  `json:"body" validate:"required"`
	FeaturedImage *string `json:"featured_image"`
	IsFeatured    *bool   `json:"is_featured"`
}

type updatePostRequest struct {
	CategoryID    *int64  `json:"category_id"`
	Title         *string `json:"title"`
	Body          *string `json:"body"`
	FeaturedImage *string `json:"featured_image"`
	IsFeatured    *bool   `json:"is_featured"`
}

func (h *PostHandler) List(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	page, err := h.content.Posts(c.Request().Context(), session.Token, queryPage(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *PostHandler) Get(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.content.Post(c.Request().Context(), session.Token, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Create(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	post, err := h.content.CreatePost(c.Request().Context(), session.Token, ports.PostInput{
		CategoryID:    &req.CategoryID,
		Title:         &req.Title,
		Body:          &req.Body,
		FeaturedImage: req.FeaturedImage,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Update(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.content.UpdatePost(c.Request().Context(), session.Token, id, ports.PostInput{
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Body:          req.Body,
		FeaturedImage: req.FeaturedImage,
		IsFeatured:    req.IsFeatured,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.content.DeletePost(c.Request().Context(), session.Token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UploadImage streams a post image upstream and returns its storage path.
func (h *PostHandler) UploadImage(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "image file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read image upload")
	}
	defer src.Close()

	path, err := h.content.UploadImage(c.Request().Context(), session.Token, ports.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      src,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, map[string]string{"path": path})
}
