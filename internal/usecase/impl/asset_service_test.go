package impl

import (
	"context"
	"fmt"
	"testing"

	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssetService(tx repository.TransactionManager, storage service.StorageService) *assetService {
	return NewAssetService(AssetServiceParams{
		TxManager:      tx,
		StorageService: storage,
		Logger:         newDiscardLogger(),
	}).(*assetService)
}

func TestAssetService_UploadStoreLogo_Success(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()
	key := fmt.Sprintf("stores/%s/logo.png", storeID)

	storeRepo := new(mockStoreRepository)
	storage := new(mockStorageService)
	tx := &stubTxManager{factory: &stubRepoFactory{storeRepo: storeRepo}}
	svc := newAssetService(tx, storage)

	data := []byte("png-bytes")
	storage.On("Upload", ctx, key, data, "image/png").Return("https://cdn.example.com/"+key, nil)
	storeRepo.On("FindStoreByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	storeRepo.On("UpdateStore", ctx, mock.MatchedBy(func(store *entity.Store) bool {
		return store.Logo == "https://cdn.example.com/"+key
	})).Return(nil)

	url, err := svc.UploadStoreLogo(ctx, storeID, data, "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
	storage.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
}

func TestAssetService_UploadStoreLogo_UnsupportedContentType(t *testing.T) {
	storage := new(mockStorageService)
	svc := newAssetService(&stubTxManager{}, storage)

	_, err := svc.UploadStoreLogo(context.Background(), uuid.New(), []byte("data"), "application/pdf")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAssetService_UploadProductImage_Success(t *testing.T) {
	ctx := context.Background()
	dealID := uuid.New()
	key := fmt.Sprintf("deals/%s/product.webp", dealID)

	dealRepo := new(mockDealRepository)
	storage := new(mockStorageService)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo}}
	svc := newAssetService(tx, storage)

	data := []byte("webp-bytes")
	storage.On("Upload", ctx, key, data, "image/webp").Return("https://cdn.example.com/"+key, nil)
	dealRepo.On("FindDealByID", ctx, dealID).Return(&entity.Deal{ID: dealID}, nil)
	dealRepo.On("UpdateDeal", ctx, mock.MatchedBy(func(deal *entity.Deal) bool {
		return deal.ProductImage == "https://cdn.example.com/"+key
	})).Return(nil)

	url, err := svc.UploadProductImage(ctx, dealID, data, "image/webp")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/"+key, url)
	dealRepo.AssertExpectations(t)
}

func TestAssetService_UploadProductImage_MissingDeal(t *testing.T) {
	ctx := context.Background()
	dealID := uuid.New()

	dealRepo := new(mockDealRepository)
	storage := new(mockStorageService)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo}}
	svc := newAssetService(tx, storage)

	storage.On("Upload", ctx, mock.Anything, mock.Anything, "image/jpeg").Return("https://cdn.example.com/x", nil)
	dealRepo.On("FindDealByID", ctx, dealID).Return(nil, repository.ErrDealNotFound)

	_, err := svc.UploadProductImage(ctx, dealID, []byte("jpg-bytes"), "image/jpeg")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
	dealRepo.AssertNotCalled(t, "UpdateDeal", mock.Anything, mock.Anything)
}
