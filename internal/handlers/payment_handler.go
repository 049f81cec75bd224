package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harentsoaR/doctors-portal-api/internal/services"
)

// CreatePaymentIntent turns a dollar price into a card payment intent and
// returns its client secret. "fee" is accepted as an alias for "price".
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price *float64 `json:"price"`
		Fee   *float64 `json:"fee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	price := req.Price
	if price == nil {
		price = req.Fee
	}
	if price == nil || *price <= 0 {
		h.fail(c, http.StatusBadRequest, "price must be a positive amount", nil)
		return
	}
	if *price > services.MaxPrice {
		h.fail(c, http.StatusBadRequest, "price exceeds the maximum charge", nil)
		return
	}

	secret, err := h.Payments.CreatePaymentIntent(c.Request.Context(), services.ToMinorUnits(*price), services.CurrencyUSD)
	if err != nil {
		h.fail(c, http.StatusInternalServerError, "Failed to create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}
