package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/domain"
)

func getCatalogState(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.CatalogState.Get())
	}
}

type filterRequest struct {
	Search   string `json:"search"`
	Category string `json:"category"`
}

func putCatalogFilter(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req filterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter payload"})
			return
		}
		deps.Filters.SetSearch(req.Search)
		deps.Filters.SetCategory(req.Category)
		c.JSON(http.StatusOK, deps.CatalogState.Get())
	}
}

func postCatalogSync(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Remote failures degrade to cache/seed inside the synchronizer;
		// an error here means local storage trouble.
		if err := deps.Synchronizer.Sync(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog sync failed"})
			return
		}
		c.JSON(http.StatusOK, deps.CatalogState.Get())
	}
}

type productDetailResponse struct {
	Product domain.Product  `json:"product"`
	Reviews []domain.Review `json:"reviews"`
}

func getProduct(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		product, err := deps.Catalog.GetByCode(c.Request.Context(), code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		reviews, err := deps.Reviews.ByProduct(c.Request.Context(), code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "reviews unavailable"})
			return
		}
		if reviews == nil {
			reviews = []domain.Review{}
		}
		c.JSON(http.StatusOK, productDetailResponse{Product: *product, Reviews: reviews})
	}
}
