package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func VendorRoutes(server *gin.Engine, requireApiKey gin.HandlerFunc) {
	vendor := server.Group("/vendor", requireApiKey)
	{
		vendor.POST("", controllers.CreateVendor)
		vendor.GET("", controllers.GetVendors)
		vendor.GET("/:vendorId", controllers.GetVendor)
		vendor.PATCH("/:vendorId", controllers.UpdateVendor)
		vendor.PATCH("/status", controllers.UpdateVendorStatus)
		vendor.DELETE("/:vendorId", controllers.DeleteVendor)
	}
}
