package middleware

import (
	"net/http"

	"main/utils"

	"github.com/gin-gonic/gin"
)

// RequestSizeLimiter rejects bodies larger than maxSize bytes. Requests
// without a declared length are capped by the reader instead.
func RequestSizeLimiter(maxSize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxSize {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, &utils.Response{
				Error: "Request body too large",
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)
		c.Next()
	}
}
