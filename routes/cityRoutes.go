package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func CityRoutes(server *gin.Engine, requireApiKey gin.HandlerFunc) {
	city := server.Group("/city", requireApiKey)
	{
		city.POST("", controllers.CreateCity)
		city.GET("", controllers.GetCities)
		city.PATCH("/:cityId", controllers.UpdateCity)
		city.DELETE("/:cityId", controllers.DeleteCity)

		city.POST("/:cityId/areas", controllers.CreateArea)
		city.GET("/:cityId/areas", controllers.GetAreas)
		city.PATCH("/:cityId/areas/:areaId", controllers.UpdateArea)
		city.DELETE("/:cityId/areas/:areaId", controllers.DeleteArea)
	}
}
