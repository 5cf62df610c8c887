package routes

import (
	controller "go-restaurant-orders/controllers"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

func TableRoutes(incomingRoutes *gin.Engine) {
	admin := middleware.RequireRoles(models.RoleAdmin)

	incomingRoutes.GET("/tables", controller.GetTables())
	incomingRoutes.GET("/tables/:table_id", controller.GetTable())
	incomingRoutes.POST("/tables", admin, controller.CreateTable())
	incomingRoutes.PATCH("/tables/:table_id", admin, controller.UpdateTable())
}
