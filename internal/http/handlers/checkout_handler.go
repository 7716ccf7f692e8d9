// README: Checkout handler; places an order for a selected option.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"roamcost/internal/modules/checkout"
)

type CheckoutHandler struct {
	checkout *checkout.Service
}

func NewCheckoutHandler(svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{checkout: svc}
}

type checkoutReq struct {
	UserID         int64           `json:"userId"`
	SelectedOption string          `json:"selectedOption"`
	TotalCost      decimal.Decimal `json:"totalCost"`
	Currency       string          `json:"currency"`
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	orderID, err := h.checkout.Process(c.Request.Context(), checkout.Command{
		UserID:         req.UserID,
		SelectedOption: req.SelectedOption,
		TotalCost:      req.TotalCost,
		Currency:       req.Currency,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          "ok",
		"order_id":        orderID,
		"user_id":         req.UserID,
		"selected_option": req.SelectedOption,
		"total_cost":      req.TotalCost,
		"currency":        req.Currency,
	})
}
