package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// DocumentFilter narrows the document listing.
type DocumentFilter struct {
	DocumentCategoryID *int64
	PerPage            *int
	Page               int
}

// DocumentCategoryInput carries a document category create or update.
type DocumentCategoryInput struct {
	Name        string
	Description *string
}

// DocumentUploadInput carries one upload batch; all files share the same
// name, description and category.
type DocumentUploadInput struct {
	DocumentCategoryID int64
	Name               string
	Description        string
	Files              []Upload
}

// DocumentUpdateInput carries a metadata edit for a stored document.
type DocumentUpdateInput struct {
	DocumentCategoryID *int64
	Name               *string
	Description        *string
}

// DocumentUploadResult is the upstream response to a batch upload.
type DocumentUploadResult struct {
	Status string            `json:"status"`
	Items  []domain.Document `json:"items"`
}

// DocumentAPI covers investor document storage and its categories.
type DocumentAPI interface {
	DocumentCategories(ctx context.Context, token string) ([]domain.DocumentCategory, error)
	CreateDocumentCategory(ctx context.Context, token string, in DocumentCategoryInput) (*domain.DocumentCategory, error)
	UpdateDocumentCategory(ctx context.Context, token string, id int64, in DocumentCategoryInput) (*domain.DocumentCategory, error)
	DeleteDocumentCategory(ctx context.Context, token string, id int64) error

	Documents(ctx context.Context, token string, filter DocumentFilter) (*domain.Page[domain.Document], error)
	UploadDocuments(ctx context.Context, token string, in DocumentUploadInput) (*DocumentUploadResult, error)
	UpdateDocument(ctx context.Context, token string, id int64, in DocumentUpdateInput) (*domain.Document, error)
	DeleteDocument(ctx context.Context, token string, id int64) error
}
