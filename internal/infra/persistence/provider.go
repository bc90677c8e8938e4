// Package persistence selects the storage backend: PostgreSQL when the
// database is configured, read-only fixture repositories otherwise.
package persistence

import (
	"dealhub/config"
	"dealhub/internal/domain/repository"
	"dealhub/internal/infra/persistence/memory"
	"dealhub/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// NewFixtures loads the demo dataset. With a configured database the
// fixtures stay empty and unused.
func NewFixtures(cfg *config.Config) (*memory.Fixtures, error) {
	if cfg.Postgres != nil {
		return &memory.Fixtures{}, nil
	}

	path := ""
	if cfg.Catalog != nil {
		path = cfg.Catalog.FixturePath
	}

	fixtures, err := memory.LoadFixtures(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load demo fixtures")
	}

	return fixtures, nil
}

// NewTransactionManager selects the transactional backend.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	if db == nil {
		return memory.NewTransactionManager()
	}

	return postgres.NewTransactionManager(db)
}

// NewDealRepository selects the deal storage backend.
func NewDealRepository(db *gorm.DB, fixtures *memory.Fixtures) repository.DealRepository {
	if db == nil {
		return memory.NewDealRepository(fixtures)
	}

	return postgres.NewDealRepository(db)
}

// NewStoreRepository selects the store storage backend.
func NewStoreRepository(db *gorm.DB, fixtures *memory.Fixtures) repository.StoreRepository {
	if db == nil {
		return memory.NewStoreRepository(fixtures)
	}

	return postgres.NewStoreRepository(db)
}

// NewCategoryRepository selects the category storage backend.
func NewCategoryRepository(db *gorm.DB, fixtures *memory.Fixtures) repository.CategoryRepository {
	if db == nil {
		return memory.NewCategoryRepository(fixtures)
	}

	return postgres.NewCategoryRepository(db)
}

// NewAdvertisementRepository selects the banner storage backend.
func NewAdvertisementRepository(db *gorm.DB, fixtures *memory.Fixtures) repository.AdvertisementRepository {
	if db == nil {
		return memory.NewAdvertisementRepository(fixtures)
	}

	return postgres.NewAdvertisementRepository(db)
}

// NewRefreshTokenRepository selects the session storage backend.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	if db == nil {
		return memory.NewRefreshTokenRepository()
	}

	return postgres.NewRefreshTokenRepository(db)
}

// NewFavoriteRepository selects the favorite storage backend.
func NewFavoriteRepository(db *gorm.DB) repository.FavoriteRepository {
	if db == nil {
		return memory.NewFavoriteRepository()
	}

	return postgres.NewFavoriteRepository(db)
}

// NewDeviceRepository selects the device storage backend.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	if db == nil {
		return memory.NewDeviceRepository()
	}

	return postgres.NewDeviceRepository(db)
}

// NewAdminRepository selects the admin grant storage backend.
func NewAdminRepository(db *gorm.DB) repository.AdminRepository {
	if db == nil {
		return memory.NewAdminRepository()
	}

	return postgres.NewAdminRepository(db)
}

// Module wires the persistence layer.
//
//nolint:gochecknoglobals // fx module definition
var Module = fx.Options(
	fx.Provide(
		postgres.New,
		NewFixtures,
		NewTransactionManager,
		NewDealRepository,
		NewStoreRepository,
		NewCategoryRepository,
		NewAdvertisementRepository,
		NewRefreshTokenRepository,
		NewFavoriteRepository,
		NewDeviceRepository,
		NewAdminRepository,
	),
)
