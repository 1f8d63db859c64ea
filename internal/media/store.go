// Package media provides the object store interface for video and image files.
// Transcoding and duration probing are owned by the store's upstream pipeline;
// this backend only uploads, references and removes objects.
package media

import (
	"context"
	"io"
)

// Object describes a stored media object.
type Object struct {
	// Key identifies the object inside the store and is what gets persisted.
	Key string
	// URL is the public location served to clients.
	URL string
}

// Store is the narrow interface through which the backend reaches the
// external object store.
type Store interface {
	// Upload stores the content and returns the object reference.
	Upload(ctx context.Context, r io.Reader, size int64, contentType, category string) (Object, error)
	// Remove deletes a previously uploaded object. Removing a missing
	// object is not an error.
	Remove(ctx context.Context, key string) error
}
