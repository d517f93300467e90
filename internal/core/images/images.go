// Package images stores post illustration blobs. Posts keep only the
// object key; bytes live in S3-compatible storage behind BlobStore.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/rs/xid"
)

// ErrNotFound is returned when no object exists under the given key
var ErrNotFound = errors.New("image not found")

// Accepted content types for post images
var allowedContentTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// BlobStore defines the storage backend for image objects
type BlobStore interface {
	Put(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	PresignedGetURL(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}

// Service defines the business logic interface for post images
type Service interface {
	// Upload stores an image blob and returns its object key.
	// Rejects content types other than jpeg/png/gif/webp.
	Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error)

	// ResolveURL returns a bounded-lifetime URL for the object key
	ResolveURL(ctx context.Context, key string) (string, error)
}

type imageService struct {
	store BlobStore
}

// NewImageService creates a new image service
func NewImageService(store BlobStore) Service {
	return &imageService{store: store}
}

// Upload stores an image blob under a generated key
func (s *imageService) Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (string, error) {
	ext, ok := allowedContentTypes[strings.ToLower(contentType)]
	if !ok {
		return "", fmt.Errorf("unsupported image content type %q", contentType)
	}

	key := path.Join("posts", xid.New().String()+ext)
	if err := s.store.Put(ctx, key, reader, size, contentType); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return key, nil
}

// ResolveURL returns a bounded-lifetime URL for the object key
func (s *imageService) ResolveURL(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrNotFound
	}
	return s.store.PresignedGetURL(ctx, key)
}
