package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lf3m/fee-comparator/internal/comparison"
	"github.com/lf3m/fee-comparator/internal/dto"
	"github.com/lf3m/fee-comparator/internal/model"
	"github.com/lf3m/fee-comparator/internal/service"
)

type ComparisonHandler struct {
	svc *service.ComparisonService
}

func NewComparisonHandler(svc *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{svc: svc}
}

// Compare answers 200 with state "pending" when the amount does not parse.
func (h *ComparisonHandler) Compare(c *gin.Context) {
	var q dto.ComparisonQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed: " + err.Error()})
		return
	}

	method, err := model.ParsePaymentMethod(q.Method)
	if err != nil {
		_ = c.Error(err)
		return
	}

	res := h.svc.Compare(q.Amount, method)
	resp := dto.NewComparisonResponse(res.State, res.Comparison, res.NetAmounts)

	if q.Sort == "net" && res.State != comparison.StatePending {
		for _, quote := range res.Comparison.Cheapest() {
			resp.Ranking = append(resp.Ranking, dto.NewQuoteResponse(quote, true))
		}
	}

	c.JSON(http.StatusOK, resp)
}
