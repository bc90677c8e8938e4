package model

import (
	"time"

	"github.com/google/uuid"
)

// DealModel mirrors the 'deals' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type DealModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Title         string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Discount      string    `gorm:"type:varchar(100)"`
	Code          string    `gorm:"type:varchar(100)"`
	Type          string    `gorm:"type:varchar(20);not null;index"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Category      string    `gorm:"type:varchar(100);index"`
	URL           string    `gorm:"type:text"`
	Featured      bool      `gorm:"not null;default:false;index"`
	Verified      bool      `gorm:"not null;default:false"`
	UsedCount     int       `gorm:"not null;default:0"`
	Price         *float64
	OriginalPrice *float64
	ProductImage  string `gorm:"type:text"`
	ExpiresAt     *time.Time
	CreatedAt     time.Time `gorm:"index:idx_deals_created_at,sort:desc"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DealModel) TableName() string {
	return "deals"
}

// StoreModel mirrors the 'stores' table. DealCount is denormalized and kept
// in step with the deals table inside the same transaction.
type StoreModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string     `gorm:"type:varchar(255);not null;index"`
	Logo        string     `gorm:"type:text"`
	Category    string     `gorm:"type:varchar(100);index"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	URL         string     `gorm:"type:text"`
	StoreType   string     `gorm:"type:varchar(20);not null"`
	Featured    bool       `gorm:"not null;default:false;index"`
	DealCount   int        `gorm:"not null;default:0"`
	Country     string     `gorm:"type:varchar(10)"`
	Description string     `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Deals []DealModel `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// CategoryModel mirrors the 'categories' table. Slug is the canonical key.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Slug      string    `gorm:"type:varchar(100);unique;not null"`
	Icon      string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// FavoriteModel mirrors the 'favorites' table. The (user, deal) pair is unique.
type FavoriteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_deal"`
	DealID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_deal;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}

// AdvertisementModel mirrors the 'advertisements' table. DisplayOrder forms
// the rotation order.
type AdvertisementModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	CTAText      string    `gorm:"type:varchar(100)"`
	CTALink      string    `gorm:"type:text"`
	BgColor      string    `gorm:"type:varchar(20)"`
	ImageURL     string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	DisplayOrder int       `gorm:"not null;default:0;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdvertisementModel) TableName() string {
	return "advertisements"
}
