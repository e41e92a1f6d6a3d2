package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lf3m/fee-comparator/internal/dto"
	"github.com/lf3m/fee-comparator/internal/model"
)

type PaymentMethodHandler struct{}

func NewPaymentMethodHandler() *PaymentMethodHandler {
	return &PaymentMethodHandler{}
}

func (h *PaymentMethodHandler) List(c *gin.Context) {
	methods := model.PaymentMethods()
	data := make([]dto.PaymentMethodResponse, len(methods))
	for i, m := range methods {
		data[i] = dto.NewPaymentMethodResponse(m)
	}
	c.JSON(http.StatusOK, gin.H{"data": data})
}
