package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAPIKey gates administrative routes behind the shared static key.
// Browsers cannot set custom headers on websocket dials, so the key is
// also accepted as a query parameter.
func RequireAPIKey(apiKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := ctx.GetHeader("x-api-key")
		if key == "" {
			key = ctx.Query("apiKey")
		}
		if key != apiKey {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid API key"})
			return
		}
		ctx.Next()
	}
}
