package domain

// Product is one purchasable catalog entry. Products are immutable values:
// a resync supersedes a product by writing a new value under the same code,
// never by mutating the old one in place.
type Product struct {
	Code        string `json:"code"`
	Category    string `json:"category"`
	Brand       string `json:"brand"`
	Name        string `json:"name"`
	PriceCents  int64  `json:"priceCents"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image"`
}
