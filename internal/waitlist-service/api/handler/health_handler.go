package handler

import (
	"net/http"

	"waitlist-backend/internal/waitlist-service/api/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler interface {
	Root() gin.HandlerFunc
}

type healthHandler struct {
}

func (h *healthHandler) Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, response.Response{
			Message: "Hello World",
		})
	}
}

func NewHealthHandler() HealthHandler {
	return &healthHandler{}
}
