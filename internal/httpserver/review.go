package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/domain"
)

func getMyReviews(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Empty (never an error) when no user is signed in.
		c.JSON(http.StatusOK, deps.MyReviews.Get())
	}
}

type reviewRequest struct {
	ProductCode string `json:"productCode"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
}

func putReview(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := deps.Session.Identity().Get()
		if ident == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
			return
		}
		var req reviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid review payload"})
			return
		}
		review, err := deps.Reviews.Submit(c.Request.Context(), *ident, req.ProductCode, req.Rating, req.Comment)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "reviews unavailable"})
			return
		}
		c.JSON(http.StatusOK, review)
	}
}
