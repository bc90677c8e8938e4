package impl

import (
	"context"
	"testing"

	"dealhub/config"
	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSearchService(dealRepo repository.DealRepository, storeRepo repository.StoreRepository, cfg *config.Config) *searchService {
	return NewSearchService(SearchServiceParams{
		DealRepo:  dealRepo,
		StoreRepo: storeRepo,
		Config:    cfg,
		Logger:    newDiscardLogger(),
	}).(*searchService)
}

func TestSearchService_SearchDeals_ShortQuerySkipsLookup(t *testing.T) {
	dealRepo := new(mockDealRepository)
	svc := newSearchService(dealRepo, new(mockStoreRepository), nil)

	deals, err := svc.SearchDeals(context.Background(), "a", 10)

	require.NoError(t, err)
	assert.Empty(t, deals)
	dealRepo.AssertNotCalled(t, "ListDeals", mock.Anything, mock.Anything)
}

func TestSearchService_SearchDeals_WhitespaceOnlyQuerySkipsLookup(t *testing.T) {
	dealRepo := new(mockDealRepository)
	svc := newSearchService(dealRepo, new(mockStoreRepository), nil)

	// A single rune surrounded by whitespace is still below the minimum.
	deals, err := svc.SearchDeals(context.Background(), "  k  ", 10)

	require.NoError(t, err)
	assert.Empty(t, deals)
	dealRepo.AssertNotCalled(t, "ListDeals", mock.Anything, mock.Anything)
}

func TestSearchService_SearchDeals_TrimsAndForwardsQuery(t *testing.T) {
	dealRepo := new(mockDealRepository)
	svc := newSearchService(dealRepo, new(mockStoreRepository), nil)

	ctx := context.Background()
	expected := []*entity.Deal{{Title: "Keyboard deal"}}
	dealRepo.On("ListDeals", ctx, mock.MatchedBy(func(filter repository.DealFilter) bool {
		return filter.Search == "keyboard" && filter.Limit == 10
	})).Return(expected, nil)

	deals, err := svc.SearchDeals(ctx, "  keyboard  ", 10)

	require.NoError(t, err)
	assert.Equal(t, expected, deals)
	dealRepo.AssertExpectations(t)
}

func TestSearchService_SearchDeals_ClampsLimit(t *testing.T) {
	dealRepo := new(mockDealRepository)
	cfg := &config.Config{Catalog: &config.CatalogConfig{DefaultLimit: 25, MaxLimit: 50}}
	svc := newSearchService(dealRepo, new(mockStoreRepository), cfg)

	ctx := context.Background()
	dealRepo.On("ListDeals", ctx, mock.MatchedBy(func(filter repository.DealFilter) bool {
		return filter.Limit == 50
	})).Return([]*entity.Deal{}, nil)

	_, err := svc.SearchDeals(ctx, "keyboard", 9999)

	require.NoError(t, err)
	dealRepo.AssertExpectations(t)
}

func TestSearchService_SearchStores_ShortQuerySkipsLookup(t *testing.T) {
	storeRepo := new(mockStoreRepository)
	svc := newSearchService(new(mockDealRepository), storeRepo, nil)

	stores, err := svc.SearchStores(context.Background(), "x", 10)

	require.NoError(t, err)
	assert.Empty(t, stores)
	storeRepo.AssertNotCalled(t, "ListStores", mock.Anything, mock.Anything)
}

func TestSearchService_SearchStores_ForwardsQuery(t *testing.T) {
	storeRepo := new(mockStoreRepository)
	svc := newSearchService(new(mockDealRepository), storeRepo, nil)

	ctx := context.Background()
	expected := []*entity.Store{{Name: "Circuit City"}}
	storeRepo.On("ListStores", ctx, mock.MatchedBy(func(filter repository.StoreFilter) bool {
		return filter.Search == "circuit" && filter.Limit == fallbackDefaultLimit
	})).Return(expected, nil)

	stores, err := svc.SearchStores(ctx, "circuit", 0)

	require.NoError(t, err)
	assert.Equal(t, expected, stores)
	storeRepo.AssertExpectations(t)
}
