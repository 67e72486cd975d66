package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func ActivityRoutes(server *gin.Engine, requireApiKey gin.HandlerFunc) {
	activity := server.Group("/activity", requireApiKey)
	{
		activity.POST("", controllers.CreateActivity)
		activity.GET("", controllers.GetActivities)
		activity.GET("/:activityId", controllers.GetActivity)
		activity.PATCH("/:activityId", controllers.UpdateActivity)
		activity.DELETE("/:activityId", controllers.DeleteActivity)

		activity.POST("/:activityId/locations", controllers.CreateActivityLocation)
		activity.GET("/:activityId/locations", controllers.GetActivityLocations)
		activity.PATCH("/:activityId/locations/:locationId", controllers.UpdateActivityLocation)
		activity.DELETE("/:activityId/locations/:locationId", controllers.DeleteActivityLocation)
	}
}
