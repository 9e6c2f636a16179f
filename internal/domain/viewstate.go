package domain

// CategoryAll is the sentinel category that matches every product.
const CategoryAll = "All"

// CatalogViewState is the derived catalog snapshot consumed by presentation
// logic. It is recomputed whenever the product collection, the search text,
// the category selection or the sync-in-flight flag changes; it is never
// stored.
type CatalogViewState struct {
	Loading    bool      `json:"loading"`
	Search     string    `json:"search"`
	Category   string    `json:"category"`
	Categories []string  `json:"categories"`
	Products   []Product `json:"products"`
}

// CartViewState is the derived cart snapshot: the current rows together with
// a total that always matches them.
type CartViewState struct {
	Rows       []CartRow `json:"rows"`
	TotalCents int64     `json:"totalCents"`
}
