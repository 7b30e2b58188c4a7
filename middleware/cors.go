package middleware

import (
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware answers preflight requests and stamps the CORS headers.
// The allowed origin comes from the environment so deployments can pin it.
func CORSMiddleware() gin.HandlerFunc {
	origin := utils.GetEnvAsString("CORS_ALLOWED_ORIGIN", "*")

	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")
		h.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
