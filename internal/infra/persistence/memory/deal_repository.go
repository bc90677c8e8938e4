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

// dealRepository serves deals from the fixture dataset. Read-only.
type dealRepository struct {
	fixtures *Fixtures
}

// NewDealRepository is the constructor for the fixture-backed dealRepository.
func NewDealRepository(fixtures *Fixtures) repository.DealRepository {
	return &dealRepository{fixtures: fixtures}
}

// ListDeals filters the fixture deals, ordered by creation time, newest first.
func (repo *dealRepository) ListDeals(_ context.Context, filter repository.DealFilter) ([]*entity.Deal, error) {
	deals := make([]*entity.Deal, 0, len(repo.fixtures.Deals))
	for _, deal := range repo.fixtures.Deals {
		if matchesDealFilter(deal, filter) {
			deals = append(deals, deal)
		}
	}

	slices.SortFunc(deals, func(a, b *entity.Deal) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	if filter.Limit > 0 && len(deals) > filter.Limit {
		deals = deals[:filter.Limit]
	}

	return deals, nil
}

// FindDealByID retrieves a fixture deal by its unique ID.
func (repo *dealRepository) FindDealByID(_ context.Context, id uuid.UUID) (*entity.Deal, error) {
	for _, deal := range repo.fixtures.Deals {
		if deal.ID == id {
			return deal, nil
		}
	}

	return nil, repository.ErrDealNotFound
}

// CreateDeal is unavailable without a database.
func (repo *dealRepository) CreateDeal(_ context.Context, _ *entity.Deal) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("deal writes require a database")
}

// UpdateDeal is unavailable without a database.
func (repo *dealRepository) UpdateDeal(_ context.Context, _ *entity.Deal) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("deal writes require a database")
}

// DeleteDeal is unavailable without a database.
func (repo *dealRepository) DeleteDeal(_ context.Context, _ uuid.UUID) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("deal writes require a database")
}

// IncrementUsedCount is unavailable without a database.
func (repo *dealRepository) IncrementUsedCount(_ context.Context, _ uuid.UUID) error {
	return domainerrors.ErrServiceNotConfigured.WrapMessage("deal writes require a database")
}

// matchesDealFilter applies the conjunctive filter semantics of the
// database implementation to an in-memory deal.
func matchesDealFilter(deal *entity.Deal, filter repository.DealFilter) bool {
	if filter.Featured != nil && deal.Featured != *filter.Featured {
		return false
	}
	if filter.StoreID != nil && deal.StoreID != *filter.StoreID {
		return false
	}
	if filter.Category != nil && deal.Category != *filter.Category {
		return false
	}
	if filter.Type != nil && deal.Type != *filter.Type {
		return false
	}
	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		title := strings.ToLower(deal.Title)
		description := strings.ToLower(deal.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}

	return true
}
