package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lf3m/fee-comparator/internal/metrics"
	"github.com/lf3m/fee-comparator/internal/middleware"
	"github.com/lf3m/fee-comparator/internal/service"
)

type RouterConfig struct {
	DB            Pinger
	Catalog       *service.CatalogService
	Comparisons   *service.ComparisonService
	Pages         *service.PageService
	Metrics       *metrics.Metrics
	DefaultAmount string
	DefaultMethod string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics(cfg.Metrics))
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := NewHealthHandler(cfg.DB, cfg.Catalog)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Metrics.Registry, promhttp.HandlerOpts{})))

	pageHandler := NewPageHandler(cfg.Comparisons, cfg.Pages, cfg.DefaultAmount, cfg.DefaultMethod)
	router.GET("/", pageHandler.Index)

	SetupSwagger(router)
	setupAPIRoutes(router, cfg)

	return router
}

func setupAPIRoutes(router *gin.Engine, cfg RouterConfig) {
	pmHandler := NewPaymentMethodHandler()
	gatewayHandler := NewGatewayHandler(cfg.Catalog)
	comparisonHandler := NewComparisonHandler(cfg.Comparisons)

	api := router.Group("/api/v1")
	{
		api.GET("/payment-methods", pmHandler.List)
		api.GET("/gateways", gatewayHandler.List)
		api.GET("/gateways/:name", gatewayHandler.Get)
		api.GET("/comparisons", comparisonHandler.Compare)
	}
}
