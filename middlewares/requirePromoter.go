package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/promovia/promovia-api/config"
	"github.com/promovia/promovia-api/initializers"
	"github.com/promovia/promovia-api/models"
	"github.com/promovia/promovia-api/utils"
	"gorm.io/gorm"
)

// RequirePromoter authenticates requests from the promoter app. The app
// version header must equal the supported version exactly, and the bearer
// token must be the promoter's current session token.
func RequirePromoter(cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if version := ctx.GetHeader("x-app-version"); version != cfg.MinAppVersion {
			ctx.AbortWithStatusJSON(http.StatusUpgradeRequired, gin.H{"message": "Please update the app to continue"})
			return
		}

		authHeader := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization token required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ParsePromoterToken(cfg.JWTSecret, tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		promoterID, _ := claims["promoter_id"].(string)
		if promoterID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		var promoter models.Promoter
		if err := initializers.DB.First(&promoter, "id = ?", promoterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Promoter not found"})
			} else {
				ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			}
			return
		}

		// A login on another device replaces the stored session token and
		// invalidates this one.
		if promoter.SessionToken != tokenString {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Session expired, please login again"})
			return
		}
		if promoter.Status != models.StatusActive {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Account is inactive"})
			return
		}

		ctx.Set("promoter", promoter)
		ctx.Next()
	}
}
