package impl

import (
	"context"
	"testing"

	"dealhub/config"
	"dealhub/internal/domain/entity"
	domainerrors "dealhub/internal/domain/errors"
	"dealhub/internal/domain/repository"
	"dealhub/internal/domain/service"
	"dealhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDealService(tx repository.TransactionManager, dealRepo repository.DealRepository, qr service.QRCodeService, publisher service.EventPublisher, cfg *config.Config) usecase.DealUsecase {
	return NewDealService(DealServiceParams{
		TxManager:      tx,
		DealRepo:       dealRepo,
		QRCodeService:  qr,
		EventPublisher: publisher,
		Config:         cfg,
		Logger:         newDiscardLogger(),
	})
}

func codeDealInput(storeID uuid.UUID) *usecase.DealInput {
	return &usecase.DealInput{
		Title:    "15% off mechanical keyboards",
		Discount: "15% OFF",
		Code:     "KEYS15",
		Type:     entity.DealTypeCode,
		StoreID:  storeID,
		Category: "electronics",
	}
}

func TestDealService_ListDeals_AppliesDefaultLimit(t *testing.T) {
	dealRepo := new(mockDealRepository)
	svc := newDealService(&stubTxManager{}, dealRepo, nil, nil, nil)

	ctx := context.Background()
	dealRepo.On("ListDeals", ctx, mock.MatchedBy(func(filter repository.DealFilter) bool {
		return filter.Limit == fallbackDefaultLimit
	})).Return([]*entity.Deal{}, nil)

	_, err := svc.ListDeals(ctx, repository.DealFilter{})

	require.NoError(t, err)
	dealRepo.AssertExpectations(t)
}

func TestDealService_ListDeals_ClampsOversizedLimit(t *testing.T) {
	dealRepo := new(mockDealRepository)
	cfg := &config.Config{Catalog: &config.CatalogConfig{DefaultLimit: 20, MaxLimit: 100}}
	svc := newDealService(&stubTxManager{}, dealRepo, nil, nil, cfg)

	ctx := context.Background()
	dealRepo.On("ListDeals", ctx, mock.MatchedBy(func(filter repository.DealFilter) bool {
		return filter.Limit == 100
	})).Return([]*entity.Deal{}, nil)

	_, err := svc.ListDeals(ctx, repository.DealFilter{Limit: 5000})

	require.NoError(t, err)
	dealRepo.AssertExpectations(t)
}

func TestDealService_CreateDeal_CodeTypeRequiresCode(t *testing.T) {
	tx := &stubTxManager{}
	svc := newDealService(tx, new(mockDealRepository), nil, nil, nil)

	input := codeDealInput(uuid.New())
	input.Code = ""

	_, err := svc.CreateDeal(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealCodeRequired))
	assert.False(t, tx.executed)
}

func TestDealService_CreateDeal_ProductTypeRequiresPrice(t *testing.T) {
	tx := &stubTxManager{}
	svc := newDealService(tx, new(mockDealRepository), nil, nil, nil)

	input := codeDealInput(uuid.New())
	input.Type = entity.DealTypeProduct
	input.Price = nil

	_, err := svc.CreateDeal(context.Background(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealPriceRequired))
	assert.False(t, tx.executed)
}

func TestDealService_CreateDeal_BumpsStoreDealCount(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	dealRepo := new(mockDealRepository)
	storeRepo := new(mockStoreRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo, storeRepo: storeRepo}}
	svc := newDealService(tx, dealRepo, nil, nil, nil)

	storeRepo.On("FindStoreByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	dealRepo.On("CreateDeal", ctx, mock.AnythingOfType("*entity.Deal")).Return(nil)
	storeRepo.On("AdjustDealCount", ctx, storeID, 1).Return(nil)

	deal, err := svc.CreateDeal(ctx, codeDealInput(storeID))

	require.NoError(t, err)
	assert.Equal(t, storeID, deal.StoreID)
	assert.Equal(t, "KEYS15", deal.Code)
	dealRepo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
}

func TestDealService_CreateDeal_MissingStore(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	dealRepo := new(mockDealRepository)
	storeRepo := new(mockStoreRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo, storeRepo: storeRepo}}
	svc := newDealService(tx, dealRepo, nil, nil, nil)

	storeRepo.On("FindStoreByID", ctx, storeID).Return(nil, repository.ErrStoreNotFound)

	_, err := svc.CreateDeal(ctx, codeDealInput(storeID))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrStoreNotFound))
	dealRepo.AssertNotCalled(t, "CreateDeal", mock.Anything, mock.Anything)
}

func TestDealService_CreateDeal_FeaturedPublishesEvent(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	dealRepo := new(mockDealRepository)
	storeRepo := new(mockStoreRepository)
	publisher := new(mockEventPublisher)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo, storeRepo: storeRepo}}
	svc := newDealService(tx, dealRepo, nil, publisher, nil)

	storeRepo.On("FindStoreByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	dealRepo.On("CreateDeal", ctx, mock.AnythingOfType("*entity.Deal")).Return(nil)
	storeRepo.On("AdjustDealCount", ctx, storeID, 1).Return(nil)
	publisher.On("PublishDealEvent", ctx, mock.MatchedBy(func(event *service.DealEvent) bool {
		return event.EventType == service.EventDealFeatured && event.StoreID == storeID.String()
	})).Return(nil)

	input := codeDealInput(storeID)
	input.Featured = true

	_, err := svc.CreateDeal(ctx, input)

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestDealService_CreateDeal_PublishFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	storeID := uuid.New()

	dealRepo := new(mockDealRepository)
	storeRepo := new(mockStoreRepository)
	publisher := new(mockEventPublisher)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo, storeRepo: storeRepo}}
	svc := newDealService(tx, dealRepo, nil, publisher, nil)

	storeRepo.On("FindStoreByID", ctx, storeID).Return(&entity.Store{ID: storeID}, nil)
	dealRepo.On("CreateDeal", ctx, mock.AnythingOfType("*entity.Deal")).Return(nil)
	storeRepo.On("AdjustDealCount", ctx, storeID, 1).Return(nil)
	publisher.On("PublishDealEvent", ctx, mock.Anything).Return(assert.AnError)

	input := codeDealInput(storeID)
	input.Featured = true

	deal, err := svc.CreateDeal(ctx, input)

	// The deal is already committed; a queue hiccup must not undo it.
	require.NoError(t, err)
	assert.NotNil(t, deal)
}

func TestDealService_UpdateDeal_StoreMoveShiftsBothCounters(t *testing.T) {
	ctx := context.Background()
	dealID := uuid.New()
	oldStoreID := uuid.New()
	newStoreID := uuid.New()

	dealRepo := new(mockDealRepository)
	storeRepo := new(mockStoreRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo, storeRepo: storeRepo}}
	svc := newDealService(tx, dealRepo, nil, nil, nil)

	dealRepo.On("FindDealByID", ctx, dealID).Return(&entity.Deal{ID: dealID, StoreID: oldStoreID, Type: entity.DealTypeCode, Code: "OLD"}, nil)
	storeRepo.On("FindStoreByID", ctx, newStoreID).Return(&entity.Store{ID: newStoreID}, nil)
	storeRepo.On("AdjustDealCount", ctx, oldStoreID, -1).Return(nil)
	storeRepo.On("AdjustDealCount", ctx, newStoreID, 1).Return(nil)
	dealRepo.On("UpdateDeal", ctx, mock.AnythingOfType("*entity.Deal")).Return(nil)

	deal, err := svc.UpdateDeal(ctx, dealID, codeDealInput(newStoreID))

	require.NoError(t, err)
	assert.Equal(t, newStoreID, deal.StoreID)
	storeRepo.AssertExpectations(t)
}

func TestDealService_DeleteDeal_DecrementsStoreDealCount(t *testing.T) {
	ctx := context.Background()
	dealID := uuid.New()
	storeID := uuid.New()

	dealRepo := new(mockDealRepository)
	storeRepo := new(mockStoreRepository)
	tx := &stubTxManager{factory: &stubRepoFactory{dealRepo: dealRepo, storeRepo: storeRepo}}
	svc := newDealService(tx, dealRepo, nil, nil, nil)

	dealRepo.On("FindDealByID", ctx, dealID).Return(&entity.Deal{ID: dealID, StoreID: storeID}, nil)
	dealRepo.On("DeleteDeal", ctx, dealID).Return(nil)
	storeRepo.On("AdjustDealCount", ctx, storeID, -1).Return(nil)

	err := svc.DeleteDeal(ctx, dealID)

	require.NoError(t, err)
	dealRepo.AssertExpectations(t)
	storeRepo.AssertExpectations(t)
}

func TestDealService_GetDeal_NotFound(t *testing.T) {
	dealRepo := new(mockDealRepository)
	svc := newDealService(&stubTxManager{}, dealRepo, nil, nil, nil)

	ctx := context.Background()
	dealID := uuid.New()
	dealRepo.On("FindDealByID", ctx, dealID).Return(nil, repository.ErrDealNotFound)

	_, err := svc.GetDeal(ctx, dealID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
}

func TestDealService_GetRedemptionQR_RequiresCodeType(t *testing.T) {
	dealRepo := new(mockDealRepository)
	qr := new(mockQRCodeService)
	svc := newDealService(&stubTxManager{}, dealRepo, qr, nil, nil)

	ctx := context.Background()
	dealID := uuid.New()
	dealRepo.On("FindDealByID", ctx, dealID).Return(&entity.Deal{ID: dealID, Type: entity.DealTypeLink}, nil)

	_, err := svc.GetRedemptionQR(ctx, dealID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealCodeRequired))
	qr.AssertNotCalled(t, "GenerateRedemptionQR", mock.Anything, mock.Anything)
}

func TestDealService_GetRedemptionQR_Success(t *testing.T) {
	dealRepo := new(mockDealRepository)
	qr := new(mockQRCodeService)
	svc := newDealService(&stubTxManager{}, dealRepo, qr, nil, nil)

	ctx := context.Background()
	dealID := uuid.New()
	dealRepo.On("FindDealByID", ctx, dealID).Return(&entity.Deal{ID: dealID, Type: entity.DealTypeCode, Code: "KEYS15"}, nil)
	qr.On("GenerateRedemptionQR", dealID, "KEYS15").Return([]byte("png-bytes"), nil)

	png, err := svc.GetRedemptionQR(ctx, dealID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), png)
}

func TestDealService_IncrementUsedCount_NotFound(t *testing.T) {
	dealRepo := new(mockDealRepository)
	svc := newDealService(&stubTxManager{}, dealRepo, nil, nil, nil)

	ctx := context.Background()
	dealID := uuid.New()
	dealRepo.On("IncrementUsedCount", ctx, dealID).Return(repository.ErrDealNotFound)

	err := svc.IncrementUsedCount(ctx, dealID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDealNotFound))
}
