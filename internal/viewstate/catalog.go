// Package viewstate derives the presentation snapshots: the filtered catalog
// with its category list, and the cart with its running total. Composers own
// no data; every value they publish is a pure function of the latest
// upstream snapshots.
package viewstate

import (
	"sort"
	"strings"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
)

// CatalogComposer combines the reactive product collection with transient
// filter state (search text, category) and the sync-in-flight flag into one
// consistent catalog snapshot, recomputed on any upstream change.
type CatalogComposer struct {
	search   *observe.Cell[string]
	category *observe.Cell[string]
	state    *observe.Cell[domain.CatalogViewState]
	cancel   func()
}

// NewCatalogComposer wires the composition. Filters start at empty search
// and the "All" category.
func NewCatalogComposer(products *observe.Cell[[]domain.Product], syncing *observe.Cell[bool]) *CatalogComposer {
	search := observe.NewCell("")
	category := observe.NewCell(domain.CategoryAll)
	state, cancel := observe.Combine4(products, search, category, syncing, ComposeCatalog)
	return &CatalogComposer{
		search:   search,
		category: category,
		state:    state,
		cancel:   cancel,
	}
}

// SetSearch replaces the active search text.
func (c *CatalogComposer) SetSearch(text string) {
	c.search.Set(text)
}

// SetCategory replaces the active category filter. Empty selects "All".
func (c *CatalogComposer) SetCategory(category string) {
	if category == "" {
		category = domain.CategoryAll
	}
	c.category.Set(category)
}

// State is the derived catalog view state.
func (c *CatalogComposer) State() *observe.Cell[domain.CatalogViewState] {
	return c.state
}

// Close detaches the composer from its inputs.
func (c *CatalogComposer) Close() {
	c.cancel()
}

// ComposeCatalog builds the catalog snapshot from the full product list and
// the active filters. A product is included iff its category matches the
// selection (the "All" sentinel matches everything) and the search text
// appears, case-insensitively, in its name or brand.
func ComposeCatalog(products []domain.Product, search, category string, syncing bool) domain.CatalogViewState {
	filtered := []domain.Product{}
	for _, p := range products {
		if matchesCategory(p, category) && matchesSearch(p, search) {
			filtered = append(filtered, p)
		}
	}
	return domain.CatalogViewState{
		Loading:    syncing,
		Search:     search,
		Category:   category,
		Categories: categoryList(products),
		Products:   filtered,
	}
}

func matchesCategory(p domain.Product, category string) bool {
	return category == domain.CategoryAll || p.Category == category
}

func matchesSearch(p domain.Product, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(p.Name), needle) ||
		strings.Contains(strings.ToLower(p.Brand), needle)
}

// categoryList is "All" followed by the distinct categories of the full
// (unfiltered) collection, lexicographically sorted.
func categoryList(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	distinct := make([]string, 0, len(products))
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		distinct = append(distinct, p.Category)
	}
	sort.Strings(distinct)
	return append([]string{domain.CategoryAll}, distinct...)
}
