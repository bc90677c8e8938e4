package service

import (
	"context"
)

// StorageService defines the interface for blob storage of catalog assets
// such as store logos and product images.
type StorageService interface {
	// Upload writes data under the given key and returns the public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// PublicURL returns the public URL for an already stored key.
	PublicURL(key string) string

	// Delete removes the object stored under the given key.
	Delete(ctx context.Context, key string) error
}
