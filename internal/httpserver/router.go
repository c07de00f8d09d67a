package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"shopflow/internal/catalog"
	"shopflow/internal/checkout"
	"shopflow/internal/domain"
	checkoutsvc "shopflow/internal/service/checkout"
)

// CatalogService serves the storefront's product browsing surface.
type CatalogService interface {
	Browse(ctx context.Context, q catalog.Query) (catalog.Result, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}

// CheckoutService drives the checkout wizard sessions.
type CheckoutService interface {
	Create() checkoutsvc.Session
	Get(id string) (checkoutsvc.Session, error)
	Apply(id string, actions []checkout.Action) (checkoutsvc.Session, error)
	Advance(id string) (checkoutsvc.Session, error)
	Retreat(id string) (checkoutsvc.Session, error)
	Submit(ctx context.Context, id string) (domain.Order, error)
}

// Deps bundles the services the router wires handlers to.
type Deps struct {
	CatalogSvc  CatalogService
	CheckoutSvc CheckoutService
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	// The storefront runs on a separate origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = corsOrigins
	corsCfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))
		api.GET("/categories", listCategoriesHandler(deps.CatalogSvc))

		api.POST("/checkout", createCheckoutHandler(deps.CheckoutSvc))
		api.GET("/checkout/:id", getCheckoutHandler(deps.CheckoutSvc))
		api.POST("/checkout/:id", updateCheckoutHandler(deps.CheckoutSvc))
		api.POST("/checkout/:id/advance", advanceCheckoutHandler(deps.CheckoutSvc))
		api.POST("/checkout/:id/back", backCheckoutHandler(deps.CheckoutSvc))
		api.POST("/checkout/:id/submit", submitCheckoutHandler(deps.CheckoutSvc))
	}

	return router
}
