package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStorage implements Storage using a MinIO (or any S3-compatible) backend.
// To point at another provider, change STORAGE_ENDPOINT and credentials —
// no code changes are needed.
type MinioStorage struct {
	client *minio.Client
	bucket string
}

// NewMinioStorage creates a MinIO client, ensures the bucket exists, and
// returns a ready-to-use MinioStorage. The bucket stays private: objects are
// only served through the gateway.
func NewMinioStorage(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStorage, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	ctx := context.Background()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", bucket, err)
		}
		log.Printf("storage: created bucket %q", bucket)
	}

	return &MinioStorage{client: client, bucket: bucket}, nil
}

// Put streams reader to MinIO under key. size must be the exact byte count.
func (s *MinioStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) error {
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: metadata,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, err)
	}
	return nil
}

// Get returns the object's content stream and description.
func (s *MinioStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, ObjectInfo{}, fmt.Errorf("get object %q: %w", key, err)
	}

	// GetObject is lazy; Stat forces the request so missing keys surface here.
	st, err := obj.Stat()
	if err != nil {
		_ = obj.Close()
		if isNotFound(err) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, fmt.Errorf("get object %q: %w", key, err)
	}
	return obj, fromMinio(st), nil
}

// Stat describes an object without fetching its content.
func (s *MinioStorage) Stat(ctx context.Context, key string) (ObjectInfo, error) {
	st, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if isNotFound(err) {
			return ObjectInfo{}, ErrNotFound
		}
		return ObjectInfo{}, fmt.Errorf("stat object %q: %w", key, err)
	}
	return fromMinio(st), nil
}

// Delete removes the object at key.
func (s *MinioStorage) Delete(ctx context.Context, key string) error {
	// RemoveObject succeeds silently on absent keys, so check first to honor
	// the ErrNotFound contract.
	if _, err := s.Stat(ctx, key); err != nil {
		return err
	}
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove object %q: %w", key, err)
	}
	return nil
}

// List returns one page of objects in lexicographic key order, resuming
// after opts.Cursor.
func (s *MinioStorage) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}

	// ListObjects paginates internally over an unbounded channel; cancel the
	// walk as soon as one page plus the truncation probe has been read.
	listCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := s.client.ListObjects(listCtx, s.bucket, minio.ListObjectsOptions{
		StartAfter:   opts.Cursor,
		WithMetadata: true,
	})

	var result ListResult
	for obj := range ch {
		if obj.Err != nil {
			return ListResult{}, fmt.Errorf("list objects: %w", obj.Err)
		}
		if len(result.Objects) == limit {
			result.Truncated = true
			break
		}
		result.Objects = append(result.Objects, fromMinio(obj))
	}

	if result.Truncated && len(result.Objects) > 0 {
		result.Cursor = result.Objects[len(result.Objects)-1].Key
	}
	return result, nil
}

func fromMinio(st minio.ObjectInfo) ObjectInfo {
	return ObjectInfo{
		Key:          st.Key,
		Size:         st.Size,
		ContentType:  st.ContentType,
		ETag:         st.ETag,
		LastModified: st.LastModified,
		UserMetadata: st.UserMetadata,
	}
}

func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound
}
