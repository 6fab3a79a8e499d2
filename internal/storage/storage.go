// Package storage defines the blob store interface the gateway runs on.
// The backend is a plain key-addressed store: atomic per-key put/get/delete
// plus paginated listing, with no transactional guarantees across keys.
// Swap implementations by changing the concrete type injected at startup —
// the MinIO implementation works with any S3-compatible provider.
package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when no object exists under the requested key.
var ErrNotFound = errors.New("object not found")

// Metadata keys attached to stored objects. Keys use canonical MIME header
// form because S3-compatible backends fold metadata key case.
const (
	MetaOriginalName = "Original-Name"
	MetaUploadTime   = "Upload-Time"
	MetaClientIP     = "Client-Ip"
	MetaUserAgent    = "User-Agent"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
	UserMetadata map[string]string
}

// ListOptions controls a paginated listing.
type ListOptions struct {
	// Limit is the maximum number of objects to return. Callers are expected
	// to clamp it; implementations treat <=0 as "implementation default".
	Limit int
	// Cursor resumes listing after the given key. Empty starts from the beginning.
	Cursor string
}

// ListResult is one page of a listing in the backend's native key order
// (typically lexicographic, not upload order).
type ListResult struct {
	Objects   []ObjectInfo
	Truncated bool
	Cursor    string
}

// Storage is the blob store contract the gateway is written against.
type Storage interface {
	// Put streams data to the store under the given key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) error
	// Get returns the object's content and description, or ErrNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Stat describes an object without fetching its content, or ErrNotFound.
	Stat(ctx context.Context, key string) (ObjectInfo, error)
	// Delete removes an object, or returns ErrNotFound if the key is absent.
	Delete(ctx context.Context, key string) error
	// List returns one page of objects in backend-native key order.
	List(ctx context.Context, opts ListOptions) (ListResult, error)
}
