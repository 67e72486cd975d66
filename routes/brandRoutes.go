package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func BrandRoutes(server *gin.Engine, requireApiKey gin.HandlerFunc) {
	brand := server.Group("/brand", requireApiKey)
	{
		brand.POST("", controllers.CreateBrand)
		brand.GET("", controllers.GetBrands)
		brand.GET("/:brandId", controllers.GetBrand)
		brand.PATCH("/:brandId", controllers.UpdateBrand)
		brand.PATCH("/status", controllers.UpdateBrandStatus)
		brand.DELETE("/:brandId", controllers.DeleteBrand)
	}
}
