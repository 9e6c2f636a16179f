package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-client/internal/session"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func postLogin(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email and password required"})
			return
		}
		if err := deps.Session.Login(c.Request.Context(), req.Email, req.Password); err != nil {
			if errors.Is(err, session.ErrBadCredentials) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "bad credentials"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "login unavailable"})
			return
		}
		c.JSON(http.StatusOK, deps.Session.Identity().Get())
	}
}

func postLogout(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		deps.Session.Logout()
		c.Status(http.StatusNoContent)
	}
}

func getMe(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident := deps.Session.Identity().Get()
		if ident == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
			return
		}
		c.JSON(http.StatusOK, ident)
	}
}
