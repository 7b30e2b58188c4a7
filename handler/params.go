package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses an integer path parameter.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
