package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the envelope every endpoint writes. The status code travels
// in the HTTP layer only.
type Response struct {
	Status  int         `json:"-"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func write(c *gin.Context, status int, resp Response) {
	resp.Status = status
	c.JSON(status, &resp)
}

func Success(c *gin.Context, data interface{}) {
	write(c, http.StatusOK, Response{Data: data})
}

func BadRequest(c *gin.Context, message string) {
	write(c, http.StatusBadRequest, Response{Error: message})
}

func NotFound(c *gin.Context, message string) {
	write(c, http.StatusNotFound, Response{Error: message})
}

func InternalError(c *gin.Context, message string) {
	write(c, http.StatusInternalServerError, Response{Error: message})
}
