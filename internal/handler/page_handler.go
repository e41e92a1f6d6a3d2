package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/internal/service"
)

type PageHandler struct {
	comparisons   *service.ComparisonService
	pages         *service.PageService
	defaultAmount string
	defaultMethod string
}

func NewPageHandler(comparisons *service.ComparisonService, pages *service.PageService, defaultAmount, defaultMethod string) *PageHandler {
	return &PageHandler{
		comparisons:   comparisons,
		pages:         pages,
		defaultAmount: defaultAmount,
		defaultMethod: defaultMethod,
	}
}

func (h *PageHandler) Index(c *gin.Context) {
	amount := c.DefaultQuery("amount", h.defaultAmount)

	method, err := model.ParsePaymentMethod(c.DefaultQuery("method", h.defaultMethod))
	if err != nil {
		_ = c.Error(err)
		return
	}

	res := h.comparisons.Compare(amount, method)
	html, err := h.pages.RenderHTML(h.pages.NewPageData(amount, res))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render HTML: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}
