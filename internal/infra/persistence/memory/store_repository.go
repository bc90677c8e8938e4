package memory

import (
	"context"
	"slices"
	"strings"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
)

// storeRepository serves stores from the fixture dataset. Read-only.
type storeRepository struct {
	fixtures *Fixtures
}

// NewStoreRepository is the constructor for the fixture-backed storeRepository.
func NewStoreRepository(fixtures *Fixtures) repository.StoreRepository {
	return &storeRepository{fixtures: fixtures}
}

// ListStores filters the fixture stores, ordered by name ASC.
func (repo *storeRepository) ListStores(_ context.Context, filter repository.StoreFilter) ([]*entity.Store, error) {
	stores := make([]*entity.Store, 0, len(repo.fixtures.Stores))
	for _, store := range repo.fixtures.Stores {
		if matchesStoreFilter(store, filter) {
			stores = append(stores, store)
		}
	}

	slices.SortFunc(stores, func(a, b *entity.Store) int {
		return strings.Compare(a.Name, b.Name)
	})

	if filter.Limit > 0 && len(stores) > filter.Limit {
		stores = stores[:filter.Limit]
	}

	return stores, nil
}

// FindStoreByID retrieves a fixture store by its unique ID.
func (repo *storeRepository) FindStoreByID(_ context.Context, id uuid.UUID) (*entity.Store, error) {
	for _, store := range repo.fixtures.Stores {
		if store.ID == id {
			return store, nil
		}
	}

	return nil, repository.ErrStoreNotFound
}

// CreateStore is unavailable without a database.
func (repo *storeRepository) CreateStore(_ context.Context, _ *entity.Store) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("store writes require a database")
}

// UpdateStore is unavailable without a database.
func (repo *storeRepository) UpdateStore(_ context.Context, _ *entity.Store) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("store writes require a database")
}

// DeleteStore is unavailable without a database.
func (repo *storeRepository) DeleteStore(_ context.Context, _ uuid.UUID) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("store writes require a database")
}

// AdjustDealCount is unavailable without a database.
func (repo *storeRepository) AdjustDealCount(_ context.Context, _ uuid.UUID, _ int) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("store writes require a database")
}

// matchesStoreFilter applies the conjunctive filter semantics of the
// database implementation to an in-memory store.
func matchesStoreFilter(store *entity.Store, filter repository.StoreFilter) bool {
	if filter.Featured != nil && store.Featured != *filter.Featured {
		return false
	}
	if filter.Category != nil && store.Category != *filter.Category {
		return false
	}
	if filter.StoreType != nil && store.StoreType != *filter.StoreType {
		return false
	}
	if filter.Country != nil && store.Country != *filter.Country {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		name := strings.ToLower(store.Name)
		description := strings.ToLower(store.Description)
		if !strings.Contains(name, needle) && !strings.Contains(description, needle) {
			return false
		}
	}

	return true
}
