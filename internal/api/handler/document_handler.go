package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// DocumentHandler serves investor document storage for both the admin
// management pages and the investor download listing.
type DocumentHandler struct {
	documents ports.DocumentAPI
}

func NewDocumentHandler(documents ports.DocumentAPI) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

type documentCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type documentUpdateRequest struct {
	DocumentCategoryID *int64  `json:"document_category_id"`
	Name               *string `json:"name"`
	Description        *string `json:"description"`
}

func (h *DocumentHandler) ListCategories(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	categories, err := h.documents.DocumentCategories(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *DocumentHandler) CreateCategory(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req documentCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.documents.CreateDocumentCategory(c.Request().Context(), session.Token, ports.DocumentCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *DocumentHandler) UpdateCategory(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req documentCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	category, err := h.documents.UpdateDocumentCategory(c.Request().Context(), session.Token, id, ports.DocumentCategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, category)
}

func (h *DocumentHandler) DeleteCategory(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.documents.DeleteDocumentCategory(c.Request().Context(), session.Token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// List serves the paginated document listing with optional category and
// page-size filters.
func (h *DocumentHandler) List(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	filter := ports.DocumentFilter{Page: queryPage(c)}
	if v, err := strconv.ParseInt(c.QueryParam("document_category_id"), 10, 64); err == nil && v > 0 {
		filter.DocumentCategoryID = &v
	}
	if v, err := strconv.Atoi(c.QueryParam("per_page")); err == nil && v > 0 {
		filter.PerPage = &v
	}

	page, err := h.documents.Documents(c.Request().Context(), session.Token, filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Upload accepts a multipart batch: shared metadata fields plus one or more
// files under files[].
func (h *DocumentHandler) Upload(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "multipart form is required")
	}

	categoryID, err := strconv.ParseInt(c.FormValue("document_category_id"), 10, 64)
	if err != nil || categoryID <= 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "document_category_id is required")
	}
	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required")
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		files = form.File["files"]
	}
	if len(files) == 0 {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "at least one file is required")
	}

	in := ports.DocumentUploadInput{
		DocumentCategoryID: categoryID,
		Name:               name,
		Description:        c.FormValue("description"),
	}
	for _, fh := range files {
		src, err := fh.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "cannot read document upload")
		}
		defer src.Close()
		in.Files = append(in.Files, ports.Upload{
			FileName:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Reader:      src,
		})
	}

	result, err := h.documents.UploadDocuments(c.Request().Context(), session.Token, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}

func (h *DocumentHandler) Update(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req documentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	document, err := h.documents.UpdateDocument(c.Request().Context(), session.Token, id, ports.DocumentUpdateInput{
		DocumentCategoryID: req.DocumentCategoryID,
		Name:               req.Name,
		Description:        req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, document)
}

func (h *DocumentHandler) Delete(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.documents.DeleteDocument(c.Request().Context(), session.Token, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
