package httpserver

import (
	"context"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
)

type synchronizer interface {
	Sync(ctx context.Context) error
}

type catalogReader interface {
	GetByCode(ctx context.Context, code string) (*domain.Product, error)
}

type catalogFilters interface {
	SetSearch(text string)
	SetCategory(category string)
}

type cartStore interface {
	AddItem(ctx context.Context, product domain.Product) error
	IncreaseQuantity(ctx context.Context, code string) error
	DecreaseQuantity(ctx context.Context, code string) error
	RemoveItem(ctx context.Context, code string) error
	Clear(ctx context.Context) error
}

type reviewService interface {
	ByProduct(ctx context.Context, code string) ([]domain.Review, error)
	Submit(ctx context.Context, author domain.Identity, productCode string, rating int, comment string) (domain.Review, error)
}

type sessionStore interface {
	Login(ctx context.Context, email, password string) error
	Logout()
	Identity() *observe.Cell[*domain.Identity]
}

// Deps collects the collaborators the routes are built over.
type Deps struct {
	Synchronizer synchronizer
	Catalog      catalogReader
	Filters      catalogFilters
	CatalogState *observe.Cell[domain.CatalogViewState]
	Cart         cartStore
	CartState    *observe.Cell[domain.CartViewState]
	Reviews      reviewService
	MyReviews    *observe.Cell[[]domain.ReviewWithProduct]
	Session      sessionStore
}

// buildRouter wires routes for the local API.
func buildRouter(logger *zap.Logger, db *gorm.DB, deps Deps, allowedOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(zapWriter{logger}), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = allowedOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/catalog", getCatalogState(deps))
	router.PUT("/catalog/filter", putCatalogFilter(deps))
	router.POST("/catalog/sync", postCatalogSync(deps))
	router.GET("/catalog/products/:code", getProduct(deps))

	router.GET("/cart", getCartState(deps))
	router.POST("/cart/items", postCartItem(deps))
	router.POST("/cart/items/:code/increase", postCartIncrease(deps))
	router.POST("/cart/items/:code/decrease", postCartDecrease(deps))
	router.DELETE("/cart/items/:code", deleteCartItem(deps))
	router.DELETE("/cart", deleteCart(deps))

	router.POST("/auth/login", postLogin(deps))
	router.POST("/auth/logout", postLogout(deps))
	router.GET("/auth/me", getMe(deps))

	router.GET("/reviews/mine", getMyReviews(deps))
	router.PUT("/reviews", putReview(deps))

	return router
}

// zapWriter adapts gin's access-log lines onto the zap logger.
type zapWriter struct {
	logger *zap.Logger
}

func (w zapWriter) Write(p []byte) (int, error) {
	w.logger.Info(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
