// Package memory provides read-only fixture repositories used when no
// database is configured. The service stays browsable in this mode;
// every write reports the missing configuration instead of failing hard.
package memory

import (
	"time"

	"dealhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Fixtures is the immutable dataset backing the demo-mode repositories.
// Loaded once at startup; never mutated afterwards, so the repositories
// are safe for concurrent reads without locking.
type Fixtures struct {
	Categories     []*entity.Category
	Stores         []*entity.Store
	Deals          []*entity.Deal
	Advertisements []*entity.Advertisement
}

// fixtureFile mirrors the YAML layout of an external fixture file.
type fixtureFile struct {
	Categories     []categoryFixture      `koanf:"categories"`
	Stores         []storeFixture         `koanf:"stores"`
	Deals          []dealFixture          `koanf:"deals"`
	Advertisements []advertisementFixture `koanf:"advertisements"`
}

type categoryFixture struct {
	ID   string `koanf:"id"`
	Name string `koanf:"name"`
	Slug string `koanf:"slug"`
	Icon string `koanf:"icon"`
}

type storeFixture struct {
	ID          string `koanf:"id"`
	Name        string `koanf:"name"`
	Logo        string `koanf:"logo"`
	Category    string `koanf:"category"`
	CategoryID  string `koanf:"categoryId"`
	URL         string `koanf:"url"`
	StoreType   string `koanf:"storeType"`
	Featured    bool   `koanf:"featured"`
	Country     string `koanf:"country"`
	Description string `koanf:"description"`
}

type dealFixture struct {
	ID            string   `koanf:"id"`
	Title         string   `koanf:"title"`
	Description   string   `koanf:"description"`
	Discount      string   `koanf:"discount"`
	Code          string   `koanf:"code"`
	Type          string   `koanf:"type"`
	StoreID       string   `koanf:"storeId"`
	Category      string   `koanf:"category"`
	URL           string   `koanf:"url"`
	Featured      bool     `koanf:"featured"`
	Verified      bool     `koanf:"verified"`
	Price         *float64 `koanf:"price"`
	OriginalPrice *float64 `koanf:"originalPrice"`
}

type advertisementFixture struct {
	ID           string `koanf:"id"`
	Title        string `koanf:"title"`
	Description  string `koanf:"description"`
	CTAText      string `koanf:"ctaText"`
	CTALink      string `koanf:"ctaLink"`
	BgColor      string `koanf:"bgColor"`
	ImageURL     string `koanf:"imageUrl"`
	IsActive     bool   `koanf:"isActive"`
	DisplayOrder int    `koanf:"displayOrder"`
}

// LoadFixtures returns the fixture dataset for demo mode. An empty path
// selects the built-in dataset; otherwise the YAML file at path is parsed.
func LoadFixtures(path string) (*Fixtures, error) {
	if path == "" {
		return builtinFixtures(), nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, "failed to load fixture file")
	}

	var raw fixtureFile
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal fixture file")
	}

	return buildFixtures(&raw)
}

// buildFixtures converts the raw YAML records into domain entities,
// assigning deterministic creation timestamps so listings have a stable order.
func buildFixtures(raw *fixtureFile) (*Fixtures, error) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fixtures := &Fixtures{}

	for i, c := range raw.Categories {
		id, err := uuid.Parse(c.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid category fixture id %q", c.ID)
		}
		fixtures.Categories = append(fixtures.Categories, &entity.Category{
			ID:        id,
			Name:      c.Name,
			Slug:      c.Slug,
			Icon:      c.Icon,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	storeDealCount := make(map[uuid.UUID]int)
	for _, d := range raw.Deals {
		storeID, err := uuid.Parse(d.StoreID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid deal fixture store id %q", d.StoreID)
		}
		storeDealCount[storeID]++
	}

	for i, s := range raw.Stores {
		id, err := uuid.Parse(s.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid store fixture id %q", s.ID)
		}
		store := &entity.Store{
			ID:          id,
			Name:        s.Name,
			Logo:        s.Logo,
			Category:    s.Category,
			URL:         s.URL,
			StoreType:   entity.StoreType(s.StoreType),
			Featured:    s.Featured,
			DealCount:   storeDealCount[id],
			Country:     s.Country,
			Description: s.Description,
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}
		if s.CategoryID != "" {
			categoryID, err := uuid.Parse(s.CategoryID)
			if err != nil {
				return nil, errors.Wrapf(err, "invalid store fixture category id %q", s.CategoryID)
			}
			store.CategoryID = &categoryID
		}
		store.UpdatedAt = store.CreatedAt
		fixtures.Stores = append(fixtures.Stores, store)
	}

	for i, d := range raw.Deals {
		id, err := uuid.Parse(d.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid deal fixture id %q", d.ID)
		}
		storeID, _ := uuid.Parse(d.StoreID)
		deal := &entity.Deal{
			ID:            id,
			Title:         d.Title,
			Description:   d.Description,
			Discount:      d.Discount,
			Code:          d.Code,
			Type:          entity.DealType(d.Type),
			StoreID:       storeID,
			Category:      d.Category,
			URL:           d.URL,
			Featured:      d.Featured,
			Verified:      d.Verified,
			Price:         d.Price,
			OriginalPrice: d.OriginalPrice,
			CreatedAt:     base.Add(time.Duration(i) * time.Minute),
		}
		deal.UpdatedAt = deal.CreatedAt
		fixtures.Deals = append(fixtures.Deals, deal)
	}

	for i, a := range raw.Advertisements {
		id, err := uuid.Parse(a.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid advertisement fixture id %q", a.ID)
		}
		ad := &entity.Advertisement{
			ID:           id,
			Title:        a.Title,
			Description:  a.Description,
			CTAText:      a.CTAText,
			CTALink:      a.CTALink,
			BgColor:      a.BgColor,
			ImageURL:     a.ImageURL,
			IsActive:     a.IsActive,
			DisplayOrder: a.DisplayOrder,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		ad.UpdatedAt = ad.CreatedAt
		fixtures.Advertisements = append(fixtures.Advertisements, ad)
	}

	return fixtures, nil
}

// builtinFixtures is the dataset served when no fixture file is configured.
func builtinFixtures() *Fixtures {
	raw := &fixtureFile{
		Categories: []categoryFixture{
			{ID: "0f5b1f9e-1111-4aaa-8a01-000000000001", Name: "Electronics", Slug: "electronics", Icon: "laptop"},
			{ID: "0f5b1f9e-1111-4aaa-8a01-000000000002", Name: "Fashion", Slug: "fashion", Icon: "shirt"},
			{ID: "0f5b1f9e-1111-4aaa-8a01-000000000003", Name: "Food & Drink", Slug: "food-drink", Icon: "utensils"},
		},
		Stores: []storeFixture{
			{
				ID: "4d2c9a10-2222-4bbb-8a02-000000000001", Name: "Circuit City",
				Category: "electronics", CategoryID: "0f5b1f9e-1111-4aaa-8a01-000000000001",
				URL: "https://circuit.example.com", StoreType: "online", Featured: true,
				Country: "TW", Description: "Gadgets and components at outlet prices.",
			},
			{
				ID: "4d2c9a10-2222-4bbb-8a02-000000000002", Name: "Thread Count",
				Category: "fashion", CategoryID: "0f5b1f9e-1111-4aaa-8a01-000000000002",
				URL: "https://threadcount.example.com", StoreType: "both",
				Country: "TW", Description: "Seasonal apparel from local designers.",
			},
			{
				ID: "4d2c9a10-2222-4bbb-8a02-000000000003", Name: "Night Market Eats",
				Category: "food-drink", CategoryID: "0f5b1f9e-1111-4aaa-8a01-000000000003",
				StoreType: "local", Country: "TW",
				Description: "Street food vouchers redeemable in person.",
			},
		},
		Deals: []dealFixture{
			{
				ID: "7e8f6b30-3333-4ccc-8a03-000000000001", Title: "15% off mechanical keyboards",
				Description: "Applies to every in-stock keyboard.", Discount: "15%", Code: "KEYS15",
				Type: "code", StoreID: "4d2c9a10-2222-4bbb-8a02-000000000001",
				Category: "electronics", Featured: true, Verified: true,
			},
			{
				ID: "7e8f6b30-3333-4ccc-8a03-000000000002", Title: "Free shipping on orders over NT$1000",
				Description: "No code needed, follow the link.", Discount: "Free shipping",
				Type: "link", StoreID: "4d2c9a10-2222-4bbb-8a02-000000000001",
				Category: "electronics", URL: "https://circuit.example.com/free-shipping",
			},
			{
				ID: "7e8f6b30-3333-4ccc-8a03-000000000003", Title: "Linen shirt summer sale",
				Description: "Breathable linen shirts at half price.", Discount: "50%",
				Type: "product", StoreID: "4d2c9a10-2222-4bbb-8a02-000000000002",
				Category: "fashion", Featured: true,
				Price: floatPtr(790), OriginalPrice: floatPtr(1580),
			},
			{
				ID: "7e8f6b30-3333-4ccc-8a03-000000000004", Title: "Buy one bubble tea, get one free",
				Description: "Show the code at the counter.", Discount: "BOGO", Code: "BUBBLE2",
				Type: "code", StoreID: "4d2c9a10-2222-4bbb-8a02-000000000003",
				Category: "food-drink", Verified: true,
			},
		},
		Advertisements: []advertisementFixture{
			{
				ID: "9a1d4c50-4444-4ddd-8a04-000000000001", Title: "Summer clearance week",
				Description: "Hundreds of deals refreshed daily.", CTAText: "Browse deals",
				CTALink: "/deals", BgColor: "#1a2b3c", IsActive: true, DisplayOrder: 1,
			},
			{
				ID: "9a1d4c50-4444-4ddd-8a04-000000000002", Title: "Get the app",
				Description: "Deal alerts for your favorite stores.", CTAText: "Learn more",
				CTALink: "/app", BgColor: "#3c2b1a", IsActive: true, DisplayOrder: 2,
			},
		},
	}

	fixtures, err := buildFixtures(raw)
	if err != nil {
		// Built-in IDs are constants; a parse failure here is a programming error.
		panic(err)
	}

	return fixtures
}

func floatPtr(v float64) *float64 {
	return &v
}
