package domain

// CartRow is one (product, quantity) pairing in the cart. At most one row
// exists per product code and Quantity is always >= 1 for a present row.
// Rows are copy-on-write: quantity changes produce a replacement value.
type CartRow struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Code returns the product code that keys this row within the cart.
func (r CartRow) Code() string {
	return r.Product.Code
}

// SubtotalCents is the row's contribution to the cart total.
func (r CartRow) SubtotalCents() int64 {
	return r.Product.PriceCents * int64(r.Quantity)
}
