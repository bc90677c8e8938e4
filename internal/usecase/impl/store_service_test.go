package impl

import (
	"context"
	"testing"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoreService(tx repository.TransactionManager, storeRepo repository.StoreRepository) *storeService {
	return NewStoreService(StoreServiceParams{
		TxManager: tx,
		StoreRepo: storeRepo,
		Logger:    newDiscardLogger(),
	}).(*storeService)
}

func TestStoreService_CreateStore_ResolvesCategorySlug(t *testing.T) {
	ctx := context.Background()
	categoryID := uuid.New()

	storeRepo := new(mockStoreRepository)
	categoryRepo := new(mockCategoryRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{storeRepo: storeRepo, categoryRepo: categoryRepo}}
	svc := newStoreService(tx, storeRepo)

	categoryRepo.On("FindCategoryBySlug", ctx, "electronics").Return(&entity.Category{ID: categoryID, Slug: "electronics"}, nil)
	storeRepo.On("CreateStore", ctx, mock.MatchedBy(func(store *entity.Store) bool {
		return store.CategoryID != nil && *store.CategoryID == categoryID
	})).Return(nil)

	store, err := svc.CreateStore(ctx, &usecase.StoreInput{
		Name:      "Circuit City",
		Category:  "electronics",
		StoreType: entity.StoreTypeOnline,
	})

	require.NoError(t, err)
	require.NotNil(t, store.CategoryID)
	assert.Equal(t, categoryID, *store.CategoryID)
}

func TestStoreService_CreateStore_UnknownCategorySlug(t *testing.T) {
	ctx := context.Background()

	storeRepo := new(mockStoreRepository)
	categoryRepo := new(mockCategoryRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{storeRepo: storeRepo, categoryRepo: categoryRepo}}
	svc := newStoreService(tx, storeRepo)

	categoryRepo.On("FindCategoryBySlug", ctx, "nope").Return(nil, repository.ErrCategoryNotFound)

	_, err := svc.CreateStore(ctx, &usecase.StoreInput{
		Name:      "Circuit City",
		Category:  "nope",
		StoreType: entity.StoreTypeOnline,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	storeRepo.AssertNotCalled(t, "CreateStore", mock.Anything, mock.Anything)
}

func TestStoreService_CreateStore_UnknownStoreType(t *testing.T) {
	tx := &stubTxManager{}
	svc := newStoreService(tx, new(mockStoreRepository))

	_, err := svc.CreateStore(context.Background(), &usecase.StoreInput{
		Name:      "Circuit City",
		StoreType: entity.StoreType("franchise"),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.False(t, tx.executed)
}

func TestStoreService_DeleteStore_RefusesWhileDealsRemain(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	storeRepo := new(mockStoreRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{storeRepo: storeRepo}}
	svc := newStoreService(tx, storeRepo)

	storeRepo.On("FindStoreByID", ctx, storeID).Return(&entity.Store{ID: storeID, DealCount: 3}, nil)

	err := svc.DeleteStore(ctx, storeID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreHasDeals))
	storeRepo.AssertNotCalled(t, "DeleteStore", mock.Anything, mock.Anything)
}

func TestStoreService_DeleteStore_Success(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	storeRepo := new(mockStoreRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{storeRepo: storeRepo}}
	svc := newStoreService(tx, storeRepo)

	storeRepo.On("FindStoreByID", ctx, storeID).Return(&entity.Store{ID: storeID, DealCount: 0}, nil)
	storeRepo.On("DeleteStore", ctx, storeID).Return(nil)

	require.NoError(t, svc.DeleteStore(ctx, storeID))
	storeRepo.AssertExpectations(t)
}

func TestStoreService_ListStores_AppliesDefaultLimit(t *testing.T) {
	storeRepo := new(mockStoreRepository)
	svc := newStoreService(&stubTxManager{}, storeRepo)

	ctx := context.Background()
	storeRepo.On("ListStores", ctx, mock.MatchedBy(func(filter repository.StoreFilter) bool {
		return filter.Limit == fallbackDefaultLimit
	})).Return([]*entity.Store{}, nil)

	_, err := svc.ListStores(ctx, repository.StoreFilter{})

	require.NoError(t, err)
	storeRepo.AssertExpectations(t)
}

func TestStoreService_GetStore_NotFound(t *testing.T) {
	storeRepo := new(mockStoreRepository)
	svc := newStoreService(&stubTxManager{}, storeRepo)

	ctx := context.Background()
	storeID := uuid.New()
	storeRepo.On("FindStoreByID", ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	_, err := svc.GetStore(ctx, storeID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
}
