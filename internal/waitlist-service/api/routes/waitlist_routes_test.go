package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockhandler "waitlist-backend/internal/waitlist-service/mocks/api/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSetUpWaitlistRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHealthHandler := mockhandler.NewMockHealthHandler(ctrl)
	mockStatusHandler := mockhandler.NewMockStatusHandler(ctrl)
	mockSubscriptionHandler := mockhandler.NewMockSubscriptionHandler(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}

	mockHealthHandler.EXPECT().Root().Return(emptySuccessHandler).AnyTimes()
	mockStatusHandler.EXPECT().CreateStatusCheck().Return(emptySuccessHandler).AnyTimes()
	mockStatusHandler.EXPECT().GetStatusChecks().Return(emptySuccessHandler).AnyTimes()
	mockSubscriptionHandler.EXPECT().Subscribe().Return(emptySuccessHandler).AnyTimes()
	mockSubscriptionHandler.EXPECT().GetSubscribers().Return(emptySuccessHandler).AnyTimes()

	SetUpWaitlistRoutes(r, mockHealthHandler, mockStatusHandler, mockSubscriptionHandler)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Root Route",
			method:         http.MethodGet,
			path:           "/api/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Create Status Check Route",
			method:         http.MethodPost,
			path:           "/api/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Status Checks Route",
			method:         http.MethodGet,
			path:           "/api/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Subscribe Route",
			method:         http.MethodPost,
			path:           "/api/subscribe",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Get Subscribers Route",
			method:         http.MethodGet,
			path:           "/api/subscribers",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Route",
			method:         http.MethodGet,
			path:           "/api/unknown",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
