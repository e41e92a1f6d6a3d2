package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lf3m/fee-comparator/internal/dto"
	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/internal/service"
)

type GatewayHandler struct {
	svc *service.CatalogService
}

func NewGatewayHandler(svc *service.CatalogService) *GatewayHandler {
	return &GatewayHandler{svc: svc}
}

func (h *GatewayHandler) List(c *gin.Context) {
	var q dto.GatewayQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	var method *model.PaymentMethodType
	if q.Method != "" {
		m, err := model.ParsePaymentMethod(q.Method)
		if err != nil {
			_ = c.Error(err)
			return
		}
		method = &m
	}

	p := dto.ParsePagination(c)
	gateways := h.svc.ListGateways(method)
	start, end := p.Window(len(gateways))

	data := make([]dto.GatewayResponse, 0, end-start)
	for _, g := range gateways[start:end] {
		data = append(data, dto.NewGatewayResponse(g))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       data,
		"pagination": dto.NewPagination(p.Page, p.PageSize, len(gateways)),
	})
}

func (h *GatewayHandler) Get(c *gin.Context) {
	g, err := h.svc.GetGateway(c.Param("name"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGatewayResponse(g))
}
