// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Advertisement is a promotional banner managed from the back office.
// DisplayOrder forms a total order over banners; swapping two banners'
// positions happens atomically inside one database transaction.
type Advertisement struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the banner.
	Title        string    // Headline text.
	Description  string    // Supporting copy.
	CTAText      string    // Call-to-action button label.
	CTALink      string    // Call-to-action target URL.
	BgColor      string    // Optional background color, e.g. "#1a2b3c".
	ImageURL     string    // Optional banner image URL.
	IsActive     bool      // Whether the banner is currently shown.
	DisplayOrder int       // Position in the banner rotation, ascending.
	CreatedAt    time.Time // Timestamp of when this banner was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
