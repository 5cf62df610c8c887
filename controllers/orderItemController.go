package controllers

import (
	"net/http"

	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

type transitionRequest struct {
	Status models.ItemStatus `json:"status" validate:"required,eq=ACCEPTED|eq=REJECTED|eq=CANCELLED"`
}

// UpdateOrderItemStatus is the kitchen/bar adjudication endpoint. The kitchen
// decides food items and the bar decides beverages; admins may decide either.
func UpdateOrderItemStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		orderId := c.Param("order_id")
		itemId := c.Param("item_id")
		var req transitionRequest
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if validationErr := validate.Struct(&req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		order, err := orderService.Get(c.Request.Context(), orderId)
		if err != nil {
			respondError(c, err)
			return
		}
		item := order.FindItem(itemId)
		if item != nil {
			role := c.GetString("user_role")
			if role == models.RoleKitchen && item.Item_type != models.ItemTypeFood {
				c.JSON(http.StatusForbidden, gin.H{"error": "kitchen can only decide food items"})
				return
			}
			if role == models.RoleBar && item.Item_type != models.ItemTypeBeverage {
				c.JSON(http.StatusForbidden, gin.H{"error": "bar can only decide beverage items"})
				return
			}
		}

		updated, err := statusService.Transition(c.Request.Context(), orderId, itemId, req.Status)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, orderView(updated))
	}
}
