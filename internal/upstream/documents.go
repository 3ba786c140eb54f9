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

type documentCategoryBody struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

type documentUpdateBody struct {
	DocumentCategoryID *int64  `json:"document_category_id,omitempty"`
	Name               *string `json:"name,omitempty"`
	Description        *string `json:"description,omitempty"`
}

// DocumentCategories lists every document category; this endpoint is not
// paginated.
func (c *Client) DocumentCategories(ctx context.Context, token string) ([]domain.DocumentCategory, error) {
	var categories []domain.DocumentCategory
	err := c.do(ctx, call{
		op:     "list_document_categories",
		method: http.MethodGet,
		path:   "/api/document-categories",
		token:  token,
		out:    &categories,
	})
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateDocumentCategory adds a document category.
func (c *Client) CreateDocumentCategory(ctx context.Context, token string, in ports.DocumentCategoryInput) (*domain.DocumentCategory, error) {
	var category domain.DocumentCategory
	err := c.do(ctx, call{
		op:     "create_document_category",
		method: http.MethodPost,
		path:   "/api/document-categories",
		token:  token,
		body:   documentCategoryBody{Name: in.Name, Description: in.Description},
		out:    &category,
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateDocumentCategory edits a document category.
func (c *Client) UpdateDocumentCategory(ctx context.Context, token string, id int64, in ports.DocumentCategoryInput) (*domain.DocumentCategory, error) {
	var category domain.DocumentCategory
	err := c.do(ctx, call{
		op:     "update_document_category",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/document-categories/%d", id),
		token:  token,
		body:   documentCategoryBody{Name: in.Name, Description: in.Description},
		out:    &category,
	})
	if err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteDocumentCategory removes a document category.
func (c *Client) DeleteDocumentCategory(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		op:     "delete_document_category",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/document-categories/%d", id),
		token:  token,
	})
}

// Documents lists investor documents, optionally scoped to one category.
func (c *Client) Documents(ctx context.Context, token string, filter ports.DocumentFilter) (*domain.Page[domain.Document], error) {
	query := url.Values{}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	query.Set("page", strconv.Itoa(page))
	if filter.DocumentCategoryID != nil {
		query.Set("document_category_id", strconv.FormatInt(*filter.DocumentCategoryID, 10))
	}
	if filter.PerPage != nil {
		query.Set("per_page", strconv.Itoa(*filter.PerPage))
	}

	var result domain.Page[domain.Document]
	err := c.do(ctx, call{
		op:     "list_documents",
		method: http.MethodGet,
		path:   "/api/documents",
		token:  token,
		query:  query,
		out:    &result,
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UploadDocuments stores a batch of files sharing one name, description and
// category.
func (c *Client) UploadDocuments(ctx context.Context, token string, in ports.DocumentUploadInput) (*ports.DocumentUploadResult, error) {
	var result ports.DocumentUploadResult
	err := c.doMultipart(ctx, "upload_documents", "/api/documents", token, func(w *multipart.Writer) error {
		if err := w.WriteField("document_category_id", strconv.FormatInt(in.DocumentCategoryID, 10)); err != nil {
			return err
		}
		if err := w.WriteField("name", in.Name); err != nil {
			return err
		}
		if err := w.WriteField("description", in.Description); err != nil {
			return err
		}
		for _, f := range in.Files {
			if err := writeUpload(w, "files[]", f); err != nil {
				return err
			}
		}
		return nil
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateDocument edits a stored document's metadata.
func (c *Client) UpdateDocument(ctx context.Context, token string, id int64, in ports.DocumentUpdateInput) (*domain.Document, error) {
	var doc domain.Document
	err := c.do(ctx, call{
		op:     "update_document",
		method: http.MethodPut,
		path:   fmt.Sprintf("/api/documents/%d", id),
		token:  token,
		body: documentUpdateBody{
			DocumentCategoryID: in.DocumentCategoryID,
			Name:               in.Name,
			Description:        in.Description,
		},
		out: &doc,
	})
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// DeleteDocument removes a stored document.
func (c *Client) DeleteDocument(ctx context.Context, token string, id int64) error {
	return c.do(ctx, call{
		op:     "delete_document",
		method: http.MethodDelete,
		path:   fmt.Sprintf("/api/documents/%d", id),
		token:  token,
	})
}
