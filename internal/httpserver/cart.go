package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/domain"
)

func getCartState(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, deps.CartState.Get())
	}
}

type addItemRequest struct {
	Code string `json:"code"`
}

func postCartItem(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Code) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "code required"})
			return
		}
		product, err := deps.Catalog.GetByCode(c.Request.Context(), req.Code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "catalog unavailable"})
			return
		}
		if err := deps.Cart.AddItem(c.Request.Context(), *product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, deps.CartState.Get())
	}
}

func postCartIncrease(deps Deps) gin.HandlerFunc {
	return cartMutation(deps, func(c *gin.Context, code string) error {
		return deps.Cart.IncreaseQuantity(c.Request.Context(), code)
	})
}

func postCartDecrease(deps Deps) gin.HandlerFunc {
	return cartMutation(deps, func(c *gin.Context, code string) error {
		return deps.Cart.DecreaseQuantity(c.Request.Context(), code)
	})
}

func deleteCartItem(deps Deps) gin.HandlerFunc {
	return cartMutation(deps, func(c *gin.Context, code string) error {
		return deps.Cart.RemoveItem(c.Request.Context(), code)
	})
}

// cartMutation applies a per-code cart change and answers with the fresh
// cart snapshot. Misses inside the store are no-ops, so there is no 404 at
// this level.
func cartMutation(deps Deps, apply func(c *gin.Context, code string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := apply(c, c.Param("code")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, deps.CartState.Get())
	}
}

func deleteCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.Cart.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "cart unavailable"})
			return
		}
		c.JSON(http.StatusOK, deps.CartState.Get())
	}
}
