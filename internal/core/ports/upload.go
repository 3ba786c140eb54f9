package ports

import "io"

// Upload is a file streamed through the gateway to an upstream multipart
// endpoint. The reader is consumed exactly once.
type Upload struct {
	FileName    string
	ContentType string
	Reader      io.Reader
}
