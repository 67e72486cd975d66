package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/controllers"
)

func AuthRoutes(server *gin.Engine, requirePromoter gin.HandlerFunc) {
	auth := server.Group("/auth")
	{
		auth.POST("/send-otp", controllers.SendOtp)
		auth.POST("/verify-otp", controllers.VerifyOtp)
		auth.POST("/logout", requirePromoter, controllers.Logout)
	}
}
