package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func AdminRoutes(server *gin.Engine, requireApiKey gin.HandlerFunc) {
	admin := server.Group("/admin", requireApiKey)
	{
		admin.POST("", controllers.CreateAdmin)
		admin.GET("", controllers.GetAdmins)
		admin.POST("/login", controllers.AdminLogin)
		admin.DELETE("/:adminId", controllers.DeleteAdmin)
	}
}
