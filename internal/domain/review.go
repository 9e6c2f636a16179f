package domain

import "time"

// Review is a user's opinion on a product. The product code is a weak
// reference: the product may have left the catalog after the review was
// written. At most one review exists per (author, product) pair.
type Review struct {
	ID          string    `json:"id"`
	ProductCode string    `json:"productCode"`
	AuthorEmail string    `json:"authorEmail"`
	AuthorName  string    `json:"authorName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReviewWithProduct pairs a review with the catalog product it refers to.
// Product is nil when the product no longer exists in the catalog.
type ReviewWithProduct struct {
	Review  Review   `json:"review"`
	Product *Product `json:"product,omitempty"`
}
