// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AssetUsecase stores catalog images (store logos, product photos) in blob
// storage and returns their public URLs.
type AssetUsecase interface {
	// UploadStoreLogo stores a logo image and points the store at it.
	UploadStoreLogo(ctx context.Context, storeID uuid.UUID, data []byte, contentType string) (string, error)

	// UploadProductImage stores a product photo and points the deal at it.
	UploadProductImage(ctx context.Context, dealID uuid.UUID, data []byte, contentType string) (string, error)
}
