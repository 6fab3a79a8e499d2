// Package files implements the storage gateway: identifier-addressed image
// blobs over a key-value store, with the extension kept out of the public URL
// and recovered at read time by probing a fixed set of candidates.
package files

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/imagebed/service/internal/storage"
)

// canonicalExt maps each supported image content type to the extension used
// when the original filename does not carry a usable one.
var canonicalExt = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

// probeExtensions is the fixed priority order for resolving a fileId to its
// storage key. Every key written by Upload ends in one of these, so a full
// probe miss means the file does not exist.
var probeExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"}

var (
	// ErrUnsupportedType is returned for content types outside the image set.
	ErrUnsupportedType = errors.New("unsupported image type")
	// ErrTooLarge is returned when the declared size exceeds the limit.
	ErrTooLarge = errors.New("file exceeds size limit")
	// ErrNotFound is returned when no extension probe matches the fileId.
	ErrNotFound = errors.New("file not found")
)

// IsSupportedType reports whether contentType is an accepted image type.
func IsSupportedType(contentType string) bool {
	_, ok := canonicalExt[contentType]
	return ok
}

// UploadInput describes one incoming file.
type UploadInput struct {
	Reader       io.Reader
	OriginalName string
	ContentType  string
	// Size is the declared byte count, checked against the limit before any
	// backend write.
	Size      int64
	ClientIP  string
	UserAgent string
}

// UploadResult is returned to the caller after a successful write. The public
// URL is assembled by the HTTP layer from the request's own origin.
type UploadResult struct {
	FileID      string
	FileName    string
	FileSize    int64
	ContentType string
	UploadTime  time.Time
}

// Entry is one row of a listing.
type Entry struct {
	Key      string
	FileID   string
	Size     int64
	Uploaded time.Time
	ETag     string
}

// Listing is one page of stored files in backend-native key order.
type Listing struct {
	Files     []Entry
	Truncated bool
	Cursor    string
}

// Service performs blob operations against the storage backend. It is
// stateless: every call touches only the single key it addresses.
type Service struct {
	store    storage.Storage
	maxBytes int64
	now      func() time.Time
}

// NewService creates a files Service with the given upload size limit.
func NewService(store storage.Storage, maxBytes int64) *Service {
	return &Service{store: store, maxBytes: maxBytes, now: time.Now}
}

// MaxBytes returns the configured upload size limit.
func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Upload validates the file, writes it to the backend and returns the new
// record. Validation failures surface as ErrUnsupportedType / ErrTooLarge
// before any backend call; backend failures are wrapped and reported as a
// write failure by the HTTP layer.
func (s *Service) Upload(ctx context.Context, in UploadInput) (*UploadResult, error) {
	if !IsSupportedType(in.ContentType) {
		return nil, ErrUnsupportedType
	}
	if in.Size > s.maxBytes {
		return nil, ErrTooLarge
	}

	uploadTime := s.now().UTC()
	fileID, err := newFileID(uploadTime)
	if err != nil {
		return nil, err
	}
	key := fileID + storageExt(in.OriginalName, in.ContentType)

	metadata := map[string]string{
		storage.MetaOriginalName: in.OriginalName,
		storage.MetaUploadTime:   uploadTime.Format(time.RFC3339),
		storage.MetaClientIP:     in.ClientIP,
		storage.MetaUserAgent:    in.UserAgent,
	}
	if err := s.store.Put(ctx, key, in.Reader, in.Size, in.ContentType, metadata); err != nil {
		return nil, fmt.Errorf("write %q: %w", key, err)
	}

	return &UploadResult{
		FileID:      fileID,
		FileName:    in.OriginalName,
		FileSize:    in.Size,
		ContentType: in.ContentType,
		UploadTime:  uploadTime,
	}, nil
}

// Open resolves fileID to its storage key by probing candidate extensions in
// priority order and returns the first hit's content stream. Returns
// ErrNotFound once the whole probe list is exhausted.
func (s *Service) Open(ctx context.Context, fileID string) (io.ReadCloser, storage.ObjectInfo, error) {
	key, err := s.resolveKey(ctx, fileID)
	if err != nil {
		return nil, storage.ObjectInfo{}, err
	}
	rc, info, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, storage.ObjectInfo{}, ErrNotFound
		}
		return nil, storage.ObjectInfo{}, fmt.Errorf("read %q: %w", key, err)
	}
	return rc, info, nil
}

// Remove deletes the blob behind fileID, short-circuiting the probe on the
// first extension that matches.
func (s *Service) Remove(ctx context.Context, fileID string) error {
	key, err := s.resolveKey(ctx, fileID)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// List returns one page of stored files. Ordering is whatever the backend
// natively provides (typically lexicographic on key), not upload order.
func (s *Service) List(ctx context.Context, limit int, cursor string) (*Listing, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 1000 {
		limit = 1000
	}

	page, err := s.store.List(ctx, storage.ListOptions{Limit: limit, Cursor: cursor})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	listing := &Listing{Truncated: page.Truncated, Cursor: page.Cursor}
	for _, obj := range page.Objects {
		listing.Files = append(listing.Files, Entry{
			Key:      obj.Key,
			FileID:   strings.TrimSuffix(obj.Key, path.Ext(obj.Key)),
			Size:     obj.Size,
			Uploaded: obj.LastModified,
			ETag:     obj.ETag,
		})
	}
	return listing, nil
}

// resolveKey maps a public fileID to its physical storage key.
func (s *Service) resolveKey(ctx context.Context, fileID string) (string, error) {
	if !validFileID(fileID) {
		return "", ErrNotFound
	}
	for _, ext := range probeExtensions {
		key := fileID + ext
		_, err := s.store.Stat(ctx, key)
		if err == nil {
			return key, nil
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return "", fmt.Errorf("probe %q: %w", key, err)
		}
	}
	return "", ErrNotFound
}

// storageExt picks the extension appended to the storage key: the original
// filename's extension when it is one the probe can find again, otherwise the
// canonical extension for the content type. Upload would be a write-only hole
// if a key ever ended in an unprobeable extension.
func storageExt(originalName, contentType string) string {
	ext := strings.ToLower(path.Ext(originalName))
	for _, candidate := range probeExtensions {
		if ext == candidate {
			return ext
		}
	}
	return canonicalExt[contentType]
}
