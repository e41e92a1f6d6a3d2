package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lf3m/fee-comparator/internal/service"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	catalog *service.CatalogService
}

// NewHealthHandler takes a nil db when the catalog is not backed by Postgres.
func NewHealthHandler(db Pinger, catalog *service.CatalogService) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalog}
}

func (h *HealthHandler) Health(c *gin.Context) {
	gateways := 0
	if h.catalog != nil {
		gateways = h.catalog.GatewayCount()
	}

	dbStatus := "disabled"
	if h.db != nil {
		dbStatus = "connected"
		if err := h.db.Ping(c.Request.Context()); err != nil {
			dbStatus = "disconnected"
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"catalog":  gateways,
				"database": dbStatus,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"catalog":  gateways,
		"database": dbStatus,
	})
}
