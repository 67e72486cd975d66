package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func PromoterRoutes(server *gin.Engine, requireApiKey, requirePromoter gin.HandlerFunc) {
	server.GET("/me/projects", requirePromoter, controllers.GetMyProjects)

	promoter := server.Group("/promoter", requireApiKey)
	{
		promoter.POST("", controllers.CreatePromoter)
		promoter.GET("", controllers.GetPromoters)
		promoter.GET("/:promoterId", controllers.GetPromoter)
		promoter.PATCH("/:promoterId", controllers.UpdatePromoter)
		promoter.PATCH("/status", controllers.UpdatePromoterStatus)
		promoter.DELETE("/:promoterId", controllers.DeletePromoter)

		promoter.POST("/:promoterId/projects", controllers.AttachPromoterProject)
		promoter.GET("/:promoterId/projects", controllers.GetPromoterProjects)
		promoter.DELETE("/:promoterId/projects/:projectId", controllers.DetachPromoterProject)
	}
}
