package viewstate

import (
	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
)

// CartComposer derives the cart snapshot, rows plus total, recomputed on
// every cart mutation. The list and its total always come from the same
// upstream snapshot.
type CartComposer struct {
	state  *observe.Cell[domain.CartViewState]
	cancel func()
}

func NewCartComposer(rows *observe.Cell[[]domain.CartRow]) *CartComposer {
	state := observe.NewCell(ComposeCart(rows.Get()))
	cancel := rows.Subscribe(func(rs []domain.CartRow) {
		state.Set(ComposeCart(rs))
	})
	return &CartComposer{state: state, cancel: cancel}
}

// State is the derived cart view state.
func (c *CartComposer) State() *observe.Cell[domain.CartViewState] {
	return c.state
}

// Close detaches the composer from its input.
func (c *CartComposer) Close() {
	c.cancel()
}

// ComposeCart totals the rows: total = sum of unit price times quantity.
func ComposeCart(rows []domain.CartRow) domain.CartViewState {
	if rows == nil {
		rows = []domain.CartRow{}
	}
	var total int64
	for _, row := range rows {
		total += row.SubtotalCents()
	}
	return domain.CartViewState{Rows: rows, TotalCents: total}
}
