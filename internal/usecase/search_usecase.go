// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"dealhub/internal/domain/entity"
)

// MinSearchQueryLength is the shortest query that triggers a repository
// lookup. Shorter queries return empty results without touching storage.
const MinSearchQueryLength = 2

// SearchUsecase defines free-text search over the catalog.
type SearchUsecase interface {
	// SearchDeals matches the query against deal titles and descriptions,
	// newest first.
	SearchDeals(ctx context.Context, query string, limit int) ([]*entity.Deal, error)

	// SearchStores matches the query against store names and descriptions,
	// by name ascending.
	SearchStores(ctx context.Context, query string, limit int) ([]*entity.Store, error)
}
