package controllers

import (
	"net/http"

	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type loadCartRequest struct {
	Order_id string `json:"order_id" validate:"required"`
}

func GetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableId := c.Param("table_id")
		items, err := cartStore.Items(tableId)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"table_id": tableId, "items": items})
	}
}

func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableId := c.Param("table_id")
		var item models.DraftLineItem
		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&item); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		cartStore.SetActiveTable(tableId)
		if err := cartStore.AddItem(c.Request.Context(), tableId, item); err != nil {
			respondError(c, err)
			return
		}
		items, _ := cartStore.Items(tableId)
		c.JSON(http.StatusOK, gin.H{"table_id": tableId, "items": items})
	}
}

func UpdateCartItemQuantity() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableId := c.Param("table_id")
		lineId := c.Param("line_id")
		var req updateQuantityRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		if err := cartStore.UpdateQuantity(tableId, lineId, *req.Quantity); err != nil {
			respondError(c, err)
			return
		}
		items, _ := cartStore.Items(tableId)
		c.JSON(http.StatusOK, gin.H{"table_id": tableId, "items": items})
	}
}

func ClearCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableId := c.Param("table_id")
		cartStore.Clear(tableId)
		c.JSON(http.StatusOK, gin.H{"table_id": tableId, "items": []models.DraftLineItem{}})
	}
}

// LoadCartForEditing swaps the table's draft cart for the order's current
// pending items, so the waiter edits from the persisted truth rather than a
// stale draft.
func LoadCartForEditing() gin.HandlerFunc {
	return func(c *gin.Context) {
		tableId := c.Param("table_id")
		var req loadCartRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		lines, err := orderService.PendingLines(c.Request.Context(), req.Order_id)
		if err != nil {
			respondError(c, err)
			return
		}
		cartStore.LoadForEditing(tableId, lines)
		c.JSON(http.StatusOK, gin.H{"table_id": tableId, "items": lines})
	}
}
