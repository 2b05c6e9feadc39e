package storage

import (
	"context"
	"io"
)

// AttachmentStorage is the content-addressed binary store behind the patient
// photo and insurance-card references. The aggregate only ever holds the
// opaque reference returned by Store, never the bytes.
type AttachmentStorage interface {
	// Store writes the object and returns its reference. The reference is
	// generated from the filename hint, never chosen by the caller.
	Store(ctx context.Context, file io.Reader, size int64, contentType, filenameHint string) (string, error)
	// Fetch streams the object back along with its content type. Returns a
	// NOT_FOUND error for a reference that does not resolve.
	Fetch(ctx context.Context, reference string) (io.ReadCloser, string, error)
	// Delete removes the object. Deleting a reference that does not exist is
	// not an error.
	Delete(ctx context.Context, reference string) error
}
