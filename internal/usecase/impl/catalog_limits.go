package impl

import "dealhub/config"

// Fallback listing limits used when no catalog section is configured.
const (
	fallbackDefaultLimit = 50
	fallbackMaxLimit     = 200
)

// clampLimit resolves a requested row limit against the catalog config:
// zero or negative falls back to the default, anything above the cap is cut.
func clampLimit(cfg *config.CatalogConfig, limit int) int {
	defaultLimit := fallbackDefaultLimit
	maxLimit := fallbackMaxLimit
	if cfg != nil {
		if cfg.DefaultLimit > 0 {
			defaultLimit = cfg.DefaultLimit
		}
		if cfg.MaxLimit > 0 {
			maxLimit = cfg.MaxLimit
		}
	}

	if limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}

	return limit
}
