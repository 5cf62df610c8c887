package routes

import (
	controller "go-restaurant-orders/controllers"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	waiter := middleware.RequireRoles(models.RoleWaiter, models.RoleAdmin)
	kitchenBar := middleware.RequireRoles(models.RoleKitchen, models.RoleBar, models.RoleAdmin)
	cashier := middleware.RequireRoles(models.RoleCashier, models.RoleAdmin)
	admin := middleware.RequireRoles(models.RoleAdmin)

	incomingRoutes.GET("/orders", controller.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controller.GetOrder())
	incomingRoutes.GET("/orders/:order_id/bill", controller.GetOrderBill())

	incomingRoutes.POST("/orders", waiter, controller.CreateOrder())
	incomingRoutes.PUT("/orders/:order_id/items", waiter, controller.EditOrderItems())
	incomingRoutes.POST("/orders/:order_id/batches", waiter, controller.AppendOrderItems())

	incomingRoutes.PATCH("/orders/:order_id/items/:item_id/status", kitchenBar, controller.UpdateOrderItemStatus())

	incomingRoutes.PATCH("/orders/:order_id/payment", cashier, controller.SetPaymentOption())
	incomingRoutes.POST("/orders/:order_id/print", cashier, controller.PrintOrder())
	incomingRoutes.POST("/orders/:order_id/reopen", admin, controller.ReopenOrder())
}
