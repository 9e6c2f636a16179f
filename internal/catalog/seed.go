package catalog

import "storefront-client/internal/domain"

// SeedProducts returns the fixed fallback catalog, used only when both the
// backend and the local cache come up empty so the UI never shows zero
// products after a cold start without connectivity.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			Code:        "G502",
			Category:    "Mice",
			Brand:       "Logitech",
			Name:        "Logitech G502 Hero",
			PriceCents:  4999,
			Description: "Wired gaming mouse with HERO 25K sensor and 11 programmable buttons",
			Image:       ImageForCode("G502"),
		},
		{
			Code:        "PS5",
			Category:    "Consoles",
			Brand:       "Sony",
			Name:        "PlayStation 5",
			PriceCents:  49999,
			Description: "Sony PlayStation 5 console, disc edition",
			Image:       ImageForCode("PS5"),
		},
	}
}
