package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
)

func TestAggregator_NoIdentityMeansEmptyResult(t *testing.T) {
	identity := observe.NewCell[*domain.Identity](nil)
	reviews := observe.NewCell([]domain.Review{
		{ID: "r1", ProductCode: "P1", AuthorEmail: "a@x.com", Rating: 4},
	})
	products := observe.NewCell([]domain.Product{{Code: "P1", Name: "Prod"}})

	agg := NewAggregator(identity, reviews, products)
	defer agg.Close()

	result := agg.State().Get()
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestAggregator_PairsReviewsWithProducts(t *testing.T) {
	identity := observe.NewCell(&domain.Identity{Email: "a@x.com"})
	reviews := observe.NewCell([]domain.Review{
		{ID: "r1", ProductCode: "P1", AuthorEmail: "a@x.com", Rating: 4},
		{ID: "r2", ProductCode: "P2", AuthorEmail: "a@x.com", Rating: 2},
		{ID: "r3", ProductCode: "P1", AuthorEmail: "someone@else.com", Rating: 5},
	})
	products := observe.NewCell([]domain.Product{{Code: "P1", Name: "Prod"}})

	agg := NewAggregator(identity, reviews, products)
	defer agg.Close()

	result := agg.State().Get()
	require.Len(t, result, 2, "only the authenticated author's reviews")

	byID := map[string]domain.ReviewWithProduct{}
	for _, pair := range result {
		byID[pair.Review.ID] = pair
	}
	require.NotNil(t, byID["r1"].Product)
	assert.Equal(t, "Prod", byID["r1"].Product.Name)
	assert.Nil(t, byID["r2"].Product, "missing product degrades to nil, review kept")
}

func TestAggregator_ReviewSurvivesProductRemoval(t *testing.T) {
	identity := observe.NewCell(&domain.Identity{Email: "a@x.com"})
	reviews := observe.NewCell([]domain.Review{
		{ID: "r1", ProductCode: "P1", AuthorEmail: "a@x.com", Rating: 4, CreatedAt: time.Now()},
	})
	products := observe.NewCell([]domain.Product{{Code: "P1", Name: "Prod"}})

	agg := NewAggregator(identity, reviews, products)
	defer agg.Close()

	require.NotNil(t, agg.State().Get()[0].Product)

	// Resync drops P1 from the catalog.
	products.Set([]domain.Product{{Code: "P9", Name: "Other"}})

	result := agg.State().Get()
	require.Len(t, result, 1)
	assert.Equal(t, "r1", result[0].Review.ID)
	assert.Nil(t, result[0].Product)
}

func TestAggregator_RecomputesOnIdentityChange(t *testing.T) {
	identity := observe.NewCell[*domain.Identity](nil)
	reviews := observe.NewCell([]domain.Review{
		{ID: "r1", ProductCode: "P1", AuthorEmail: "a@x.com", Rating: 4},
	})
	products := observe.NewCell[[]domain.Product](nil)

	agg := NewAggregator(identity, reviews, products)
	defer agg.Close()

	assert.Empty(t, agg.State().Get())

	identity.Set(&domain.Identity{Email: "a@x.com"})
	assert.Len(t, agg.State().Get(), 1)

	identity.Set(nil)
	assert.Empty(t, agg.State().Get())
}
