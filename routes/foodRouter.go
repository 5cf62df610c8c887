package routes

import (
	controller "go-restaurant-orders/controllers"
	"go-restaurant-orders/middleware"
	"go-restaurant-orders/models"

	"github.com/gin-gonic/gin"
)

func FoodRoutes(incomingRoutes *gin.Engine) {
	admin := middleware.RequireRoles(models.RoleAdmin)

	incomingRoutes.GET("/foods", controller.GetFoods())
	incomingRoutes.GET("/foods/:food_id", controller.GetFood())
	incomingRoutes.POST("/foods", admin, controller.CreateFood())
	incomingRoutes.PATCH("/foods/:food_id", admin, controller.UpdateFood())
}
