package memory

import (
	"context"
	"testing"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func strPtr(v string) *string { return &v }

func testFixtures(t *testing.T) *Fixtures {
	t.Helper()

	fixtures, err := LoadFixtures("")
	require.NoError(t, err)

	return fixtures
}

func TestDealRepository_ListDeals_FiltersAreConjunctive(t *testing.T) {
	fixtures := testFixtures(t)
	repo := NewDealRepository(fixtures)

	featured := true
	deals, err := repo.ListDeals(context.Background(), repository.DealFilter{
		Featured: &featured,
		Category: strPtr("electronics"),
	})

	require.NoError(t, err)
	require.NotEmpty(t, deals)
	for _, deal := range deals {
		assert.True(t, deal.Featured)
		assert.Equal(t, "electronics", deal.Category)
	}
}

func TestDealRepository_ListDeals_SearchMatchesDescription(t *testing.T) {
	repo := NewDealRepository(testFixtures(t))

	deals, err := repo.ListDeals(context.Background(), repository.DealFilter{Search: "in-stock keyboard"})

	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "KEYS15", deals[0].Code)
}

func TestDealRepository_ListDeals_NewestFirstAndLimited(t *testing.T) {
	repo := NewDealRepository(testFixtures(t))

	deals, err := repo.ListDeals(context.Background(), repository.DealFilter{Limit: 2})

	require.NoError(t, err)
	require.Len(t, deals, 2)
	assert.True(t, deals[0].CreatedAt.After(deals[1].CreatedAt) || deals[0].CreatedAt.Equal(deals[1].CreatedAt))
}

func TestDealRepository_FindDealByID(t *testing.T) {
	fixtures := testFixtures(t)
	repo := NewDealRepository(fixtures)

	deal, err := repo.FindDealByID(context.Background(), fixtures.Deals[0].ID)
	require.NoError(t, err)
	assert.Equal(t, fixtures.Deals[0].Title, deal.Title)

	_, err = repo.FindDealByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrDealNotFound)
}

func TestDealRepository_WritesReportMissingDatabase(t *testing.T) {
	repo := NewDealRepository(testFixtures(t))
	ctx := context.Background()

	assert.True(t, errors.Is(repo.CreateDeal(ctx, &entity.Deal{}), domainerrors.ErrServiceNotConfigured))
	assert.True(t, errors.Is(repo.UpdateDeal(ctx, &entity.Deal{}), domainerrors.ErrServiceNotConfigured))
	assert.True(t, errors.Is(repo.DeleteDeal(ctx, uuid.New()), domainerrors.ErrServiceNotConfigured))
	assert.True(t, errors.Is(repo.IncrementUsedCount(ctx, uuid.New()), domainerrors.ErrServiceNotConfigured))
}

func TestStoreRepository_ListStores_SortedByName(t *testing.T) {
	repo := NewStoreRepository(testFixtures(t))

	stores, err := repo.ListStores(context.Background(), repository.StoreFilter{})

	require.NoError(t, err)
	require.NotEmpty(t, stores)
	for i := 1; i < len(stores); i++ {
		assert.LessOrEqual(t, stores[i-1].Name, stores[i].Name)
	}
}

func TestStoreRepository_ListStores_FiltersByTypeAndFeatured(t *testing.T) {
	repo := NewStoreRepository(testFixtures(t))

	online := entity.StoreTypeOnline
	stores, err := repo.ListStores(context.Background(), repository.StoreFilter{
		StoreType: &online,
		Featured:  boolPtr(true),
	})

	require.NoError(t, err)
	require.NotEmpty(t, stores)
	for _, store := range stores {
		assert.Equal(t, entity.StoreTypeOnline, store.StoreType)
		assert.True(t, store.Featured)
	}
}

func TestStoreRepository_WritesReportMissingDatabase(t *testing.T) {
	repo := NewStoreRepository(testFixtures(t))
	ctx := context.Background()

	assert.True(t, errors.Is(repo.CreateStore(ctx, &entity.Store{}), domainerrors.ErrServiceNotConfigured))
	assert.True(t, errors.Is(repo.AdjustDealCount(ctx, uuid.New(), 1), domainerrors.ErrServiceNotConfigured))
}
