package routes

import (
	controller "go-restaurant-orders/controllers"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

// Carts are waiter-session state: only waiters (and admins) touch them.
func CartRoutes(incomingRoutes *gin.Engine) {
	waiter := middleware.RequireRoles(models.RoleWaiter, models.RoleAdmin)

	incomingRoutes.GET("/carts/:table_id", waiter, controller.GetCart())
	incomingRoutes.POST("/carts/:table_id/items", waiter, controller.AddCartItem())
	incomingRoutes.PATCH("/carts/:table_id/items/:line_id", waiter, controller.UpdateCartItemQuantity())
	incomingRoutes.DELETE("/carts/:table_id", waiter, controller.ClearCart())
	incomingRoutes.POST("/carts/:table_id/load", waiter, controller.LoadCartForEditing())
}
