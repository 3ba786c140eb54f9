package upstream

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// doMultipart sends a multipart form request. The build callback writes the
// form's fields and files; headers follow the same contract as JSON calls
// except that the writer supplies its own content type.
func (c *Client) doMultipart(ctx context.Context, op, path, token string, build func(w *multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := build(w); err != nil {
		return fmt.Errorf("upstream %s: build form: %w", op, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upstream %s: finalize form: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), &buf)
	if err != nil {
		return fmt.Errorf("upstream %s: build request: %w", op, err)
	}
	c.setHeaders(req, token)
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.execute(req, op, out)
}

// writeUpload adds one file part, preserving the original content type when
// the caller supplied it.
func writeUpload(w *multipart.Writer, field string, up ports.Upload) error {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, up.FileName))
	contentType := up.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := w.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(part, up.Reader)
	return err
}
