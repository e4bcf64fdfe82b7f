package middleware

import (
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows the single frontend origin configured through
// FRONTEND_ORIGIN. The app serves one known web client, not arbitrary origins.
func CORSMiddleware() gin.HandlerFunc {
	origin := utils.GetEnvAsString("FRONTEND_ORIGIN", "http://localhost:3000")
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers",
			"Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods",
			"POST, GET, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
