package controllers

import (
	"net/http"

	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

type paymentRequest struct {
	Payment_option    models.PaymentOption `json:"payment_option" validate:"required,eq=CASH|eq=ONLINE"`
	Receipt_reference *string              `json:"receipt_reference"`
}

func SetPaymentOption() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		var req paymentRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		order, err := settlementService.SetPaymentOption(c.Request.Context(), orderId, req.Payment_option, req.Receipt_reference)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

func PrintOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		order, err := settlementService.Print(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}

// ReopenOrder clears the printed freeze. Admin only; item decisions stay as
// they were.
func ReopenOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		order, err := settlementService.ResetToOpen(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(order))
	}
}
