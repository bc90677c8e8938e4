package postgres

import (
	"testing"
	"time"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealMapper_RoundTrip(t *testing.T) {
	price := 790.0
	original := 1580.0
	expires := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)

	deal := &entity.Deal{
		ID:            uuid.New(),
		Title:         "Linen shirt summer sale",
		Description:   "Breathable linen shirts at half price.",
		Discount:      "50%",
		Type:          entity.DealTypeProduct,
		StoreID:       uuid.New(),
		Category:      "fashion",
		Featured:      true,
		Verified:      true,
		UsedCount:     42,
		Price:         &price,
		OriginalPrice: &original,
		ExpiresAt:     &expires,
	}

	got := toDealDomain(fromDealDomain(deal))

	require.NotNil(t, got)
	assert.Equal(t, deal.ID, got.ID)
	assert.Equal(t, deal.Title, got.Title)
	assert.Equal(t, deal.StoreID, got.StoreID)
	assert.Equal(t, deal.Type, got.Type)
	assert.Equal(t, deal.UsedCount, got.UsedCount)
	assert.Equal(t, deal.Price, got.Price)
	assert.Equal(t, deal.ExpiresAt, got.ExpiresAt)
}

func TestStoreMapper_RoundTrip(t *testing.T) {
	categoryID := uuid.New()
	store := &entity.Store{
		ID:         uuid.New(),
		Name:       "Circuit City",
		Category:   "electronics",
		CategoryID: &categoryID,
		StoreType:  entity.StoreTypeOnline,
		Featured:   true,
		DealCount:  7,
		Country:    "TW",
	}

	got := toStoreDomain(fromStoreDomain(store))

	require.NotNil(t, got)
	assert.Equal(t, store.ID, got.ID)
	assert.Equal(t, store.Name, got.Name)
	assert.Equal(t, store.CategoryID, got.CategoryID)
	assert.Equal(t, store.StoreType, got.StoreType)
	assert.Equal(t, store.DealCount, got.DealCount)
}

func TestDealMapper_NilSafe(t *testing.T) {
	assert.Nil(t, toDealDomain(nil))
	assert.Nil(t, fromDealDomain(nil))
	assert.Nil(t, toStoreDomain(nil))
	assert.Nil(t, fromStoreDomain(nil))
}
