// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"dealhub/config"
	deliverycontext "dealhub/internal/delivery/context"
	"dealhub/internal/domain/entity"
	"dealhub/internal/domain/repository"
	"dealhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	dealRepo      repository.DealRepository
	storeRepo     repository.StoreRepository
	catalogConfig *config.CatalogConfig
	logger        *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	DealRepo  repository.DealRepository
	StoreRepo repository.StoreRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	var catalogConfig *config.CatalogConfig
	if params.Config != nil {
		catalogConfig = params.Config.Catalog
	}

	return &searchService{
		dealRepo:      params.DealRepo,
		storeRepo:     params.StoreRepo,
		catalogConfig: catalogConfig,
		logger:        params.Logger,
	}
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SearchDeals matches the query against deal titles and descriptions.
// Queries below the minimum length return empty results without a lookup.
func (srv *searchService) SearchDeals(ctx context.Context, query string, limit int) ([]*entity.Deal, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < usecase.MinSearchQueryLength {
		return []*entity.Deal{}, nil
	}

	deals, err := srv.dealRepo.ListDeals(ctx, repository.DealFilter{
		Search: query,
		Limit:  clampLimit(srv.catalogConfig, limit),
	})
	if err != nil {
		srv.log(ctx).Error("Deal search failed", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search deals")
	}

	return deals, nil
}

// SearchStores matches the query against store names and descriptions.
func (srv *searchService) SearchStores(ctx context.Context, query string, limit int) ([]*entity.Store, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < usecase.MinSearchQueryLength {
		return []*entity.Store{}, nil
	}

	stores, err := srv.storeRepo.ListStores(ctx, repository.StoreFilter{
		Search: query,
		Limit:  clampLimit(srv.catalogConfig, limit),
	})
	if err != nil {
		srv.log(ctx).Error("Store search failed", slog.String("query", query), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to search stores")
	}

	return stores, nil
}
