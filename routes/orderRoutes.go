package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func OrderRoutes(server *gin.Engine, requireApiKey, requirePromoter gin.HandlerFunc) {
	server.POST("/order", requirePromoter, controllers.CaptureOrder)
	server.GET("/order/feed", requireApiKey, controllers.OrderFeed)

	order := server.Group("/order", requireApiKey)
	{
		order.GET("", controllers.GetOrders)
		order.GET("/:orderId", controllers.GetOrderById)
		order.PATCH("/:orderId/status", controllers.UpdateOrderStatus)
		order.PATCH("/:orderId/flag", controllers.FlagOrder)
		order.POST("/bulk-delete", controllers.BulkDeleteOrders)
	}
}
