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

const (
	msgAlreadySubscribed = "You're already on the list! You'll be the first to know when we launch."
	msgNewSubscription   = "Thank you for subscribing! You'll be the first to know when we launch."
)

type SubscriptionHandler interface {
	Subscribe() gin.HandlerFunc
	GetSubscribers() gin.HandlerFunc
}

type subscriptionHandler struct {
	logger              Logger
	subscriptionService service.SubscriptionService
}

func (s *subscriptionHandler) Subscribe() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req request.SubscribeRequest
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
		_, alreadySubscribed, err := s.subscriptionService.Subscribe(c, req.Email)
		if err != nil {
			err = fmt.Errorf("SubscriptionHandler.Subscribe: %w", err)
			s.logger.LoggingError(c, err, "failed to subscribe email", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		message := msgNewSubscription
		if alreadySubscribed {
			message = msgAlreadySubscribed
		}
		c.JSON(http.StatusOK, response.SubscribeResponse{
			Success:           true,
			Message:           message,
			AlreadySubscribed: alreadySubscribed,
		})
	}
}

func (s *subscriptionHandler) GetSubscribers() gin.HandlerFunc {
	return func(c *gin.Context) {
		subscribers, err := s.subscriptionService.GetSubscribers(c)
		if err != nil {
			err = fmt.Errorf("SubscriptionHandler.GetSubscribers: %w", err)
			s.logger.LoggingError(c, err, "failed to get subscribers", zap.ErrorLevel)
			c.JSON(http.StatusInternalServerError, response.Response{
				Message: "Internal server error",
			})
			return
		}
		subscribersRes := make([]response.SubscriberResponse, 0, len(subscribers))
		for _, subscriber := range subscribers {
			subscribersRes = append(subscribersRes, response.SubscriberResponse{
				ID:        subscriber.ID,
				Email:     subscriber.Email,
				Timestamp: subscriber.Timestamp,
				Status:    subscriber.Status,
			})
		}
		c.JSON(http.StatusOK, subscribersRes)
	}
}

func NewSubscriptionHandler(logger Logger, subscriptionService service.SubscriptionService) SubscriptionHandler {
	return &subscriptionHandler{
		logger:              logger,
		subscriptionService: subscriptionService,
	}
}
