package review

import (
	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
)

// Aggregator joins the authenticated user's reviews with the product catalog
// by product code. It recomputes whenever the identity, the review set or
// the catalog changes. A review whose product has left the catalog is kept,
// paired with a nil product.
type Aggregator struct {
	state  *observe.Cell[[]domain.ReviewWithProduct]
	cancel func()
}

// NewAggregator wires the aggregation over the three input cells.
func NewAggregator(
	identity *observe.Cell[*domain.Identity],
	reviews *observe.Cell[[]domain.Review],
	products *observe.Cell[[]domain.Product],
) *Aggregator {
	state, cancel := observe.Combine3(identity, reviews, products, aggregate)
	return &Aggregator{state: state, cancel: cancel}
}

// State is the derived list of the current user's reviews, each paired with
// its product or nil. Empty (never an error) when no user is authenticated.
func (a *Aggregator) State() *observe.Cell[[]domain.ReviewWithProduct] {
	return a.state
}

// Close detaches the aggregator from its inputs.
func (a *Aggregator) Close() {
	a.cancel()
}

func aggregate(identity *domain.Identity, reviews []domain.Review, products []domain.Product) []domain.ReviewWithProduct {
	result := []domain.ReviewWithProduct{}
	if identity == nil {
		return result
	}

	byCode := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}

	for _, rv := range reviews {
		if rv.AuthorEmail != identity.Email {
			continue
		}
		pair := domain.ReviewWithProduct{Review: rv}
		if p, ok := byCode[rv.ProductCode]; ok {
			product := p
			pair.Product = &product
		}
		result = append(result, pair)
	}
	return result
}
