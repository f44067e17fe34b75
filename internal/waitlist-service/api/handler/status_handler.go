package handler

import (
	"errors"
	"fmt"
	"net/http"

	"waitlist-backend/internal/waitlist-service/api/dto/request"
	"waitlist-backend/internal/waitlist-service/api/dto/response"
	"waitlist-backend/internal/waitlist-service/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type StatusHandler interface {
	CreateStatusCheck() gin.HandlerFunc
	GetStatusChecks() gin.HandlerFunc
}

type statusHandler struct {
	logger        Logger
	statusService service.StatusService
}

func (s *statusHandler) CreateStatusCheck() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.StatusCheckRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			var validatorError validator.ValidationErrors
			if errors.As(err, &validatorError) {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: formatValidationError(validatorError[0]),
				})
			} else {
				c.JSON(http.StatusBadRequest, response.Response{
					Message: "Invalid request body",
				})
			}
			return
		}
		check, err := s.statusService.CreateStatusCheck(c, req.ClientName)
		if err != nil {
			err = fmt.Errorf("StatusHandler.CreateStatusCheck: %w", err)
			s.logger.LoggingError(c, err, "failed to create status check", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, response.StatusCheckResponse{
			ID:         check.ID,
			ClientName: check.ClientName,
			Timestamp:  check.Timestamp,
		})
	}
}

func (s *statusHandler) GetStatusChecks() gin.HandlerFunc {
	return func(c *gin.Context) {
		checks, err := s.statusService.GetStatusChecks(c)
		if err != nil {
			err = fmt.Errorf("StatusHandler.GetStatusChecks: %w", err)
			s.logger.LoggingError(c, err, "failed to get status checks", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		checksRes := make([]response.StatusCheckResponse, 0, len(checks))
		for _, check := range checks {
			checksRes = append(checksRes, response.StatusCheckResponse{
				ID:         check.ID,
				ClientName: check.ClientName,
				Timestamp:  check.Timestamp,
			})
		}
		c.JSON(http.StatusOK, checksRes)
	}
}

func NewStatusHandler(logger Logger, statusService service.StatusService) StatusHandler {
	return &statusHandler{
		logger:        logger,
		statusService: statusService,
	}
}
