package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func ProjectRoutes(server *gin.Engine, requireApiKey gin.HandlerFunc) {
	project := server.Group("/project", requireApiKey)
	{
		project.POST("", controllers.CreateProject)
		project.GET("", controllers.GetProjects)
		project.GET("/:projectId", controllers.GetProject)
		project.PATCH("/:projectId", controllers.UpdateProject)
		project.PATCH("/status", controllers.UpdateProjectStatus)
		project.DELETE("/:projectId", controllers.DeleteProject)

		project.POST("/:projectId/promo-codes", controllers.CreateProjectPromoCode)
		project.GET("/:projectId/promo-codes", controllers.GetProjectPromoCodes)
		project.DELETE("/:projectId/promo-codes/:promoCodeId", controllers.DeleteProjectPromoCode)
	}
}
