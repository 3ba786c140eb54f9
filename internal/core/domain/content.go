package domain

// Content entities are owned by the upstream CMS and passed through the
// gateway unchanged. Timestamps stay as the upstream's strings; the portal
// never interprets them.

// Page is the pagination envelope returned by upstream list endpoints.
// Page numbers are 1-based; callers request subsequent pages themselves.
type Page[T any] struct {
	Data        []T `json:"data"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Category groups insight posts.
type Category struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	PostsCount  *int64  `json:"posts_count,omitempty"`
}

// Post is a single insight article.
type Post struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Body          string    `json:"body"`
	FeaturedImage *string   `json:"featured_image"`
	PublishedAt   *string   `json:"published_at"`
	CreatedAt     string    `json:"created_at"`
	IsFeatured    bool      `json:"is_featured,omitempty"`
	Category      *Category `json:"category,omitempty"`
	User          *User     `json:"user,omitempty"`
}

// PostComment is a public comment attached to a post.
type PostComment struct {
	ID         int64  `json:"id"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

// DocumentCategory groups investor documents.
type DocumentCategory struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Slug        string  `json:"slug"`
}

// Document is a file shared with approved investors.
type Document struct {
	ID                 int64             `json:"id"`
	DocumentCategoryID int64             `json:"document_category_id"`
	Name               string            `json:"name"`
	OriginalName       *string           `json:"original_name,omitempty"`
	Description        string            `json:"description"`
	FilePath           string            `json:"file_path"`
	MimeType           *string           `json:"mime_type"`
	SizeBytes          int64             `json:"size_bytes"`
	GroupKey           *string           `json:"group_key,omitempty"`
	CreatedAt          string            `json:"created_at"`
	UpdatedAt          string            `json:"updated_at"`
	Category           *DocumentCategory `json:"category,omitempty"`
}

// MailSettings is the outbound mail configuration managed from the admin area.
type MailSettings struct {
	MailDriver      string `json:"mail_driver"`
	MailHost        string `json:"mail_host"`
	MailPort        string `json:"mail_port"`
	MailUsername    string `json:"mail_username"`
	MailPassword    string `json:"mail_password"`
	MailEncryption  string `json:"mail_encryption"`
	MailFromAddress string `json:"mail_from_address"`
	MailFromName    string `json:"mail_from_name"`
}

// DashboardCounts is the role-dependent summary shown on dashboard landing
// pages. Absent counters stay nil rather than zero so the view can tell
// "not reported" from "none".
type DashboardCounts struct {
	Role   string `json:"role"`
	Counts struct {
		Users          *int64 `json:"users,omitempty"`
		UsersPending   *int64 `json:"users_pending,omitempty"`
		Categories     *int64 `json:"categories,omitempty"`
		Posts          *int64 `json:"posts,omitempty"`
		PostsPublished *int64 `json:"posts_published,omitempty"`
	} `json:"counts"`
}
