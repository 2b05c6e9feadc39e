package requests

import "io"

// UploadedFile is a file lifted out of a multipart request, ready to hand to
// the attachment store.
type UploadedFile struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}
