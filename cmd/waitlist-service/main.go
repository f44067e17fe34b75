package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"waitlist-backend/internal/waitlist-service/api/handler"
	"waitlist-backend/internal/waitlist-service/api/routes"
	"waitlist-backend/internal/waitlist-service/config"
	"waitlist-backend/internal/waitlist-service/repository"
	"waitlist-backend/internal/waitlist-service/service"
	"waitlist-backend/pkg/infra"
	"waitlist-backend/pkg/logger"
	"waitlist-backend/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewFileSyncer("./log/waitlist-service.log")
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.New(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "waitlist-service"))
	defer zapLogger.Sync()
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for {
			<-hup
			zapLogger.Info("receive logrotate SIGHUP, reopening log file")
			if e := fileSyncer.Reopen(); e != nil {
				zapLogger.Error("failed to reopen log file", zap.Error(e))
			}
		}
	}()

	// set up database
	mongoClient, err := infra.NewMongoConnection(infra.MongoConfig{
		URL: appConfig.Mongo.URL,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to mongodb", zap.Error(err))
	}
	zapLogger.Info("connected to mongodb successfully")
	db := mongoClient.Database(appConfig.Mongo.DBName)

	// set up dependencies
	statusCheckRepo := repository.NewStatusCheckRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	statusService := service.NewStatusService(statusCheckRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo)
	handlerLogger := handler.NewLogger(zapLogger)
	healthHandler := handler.NewHealthHandler()
	statusHandler := handler.NewStatusHandler(handlerLogger, statusService)
	subscriptionHandler := handler.NewSubscriptionHandler(handlerLogger, subscriptionService)

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	r.Use(middleware.NewCORSMiddleware(appConfig.Server.CORSOrigins))

	routes.SetUpWaitlistRoutes(r, healthHandler, statusHandler, subscriptionHandler)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	if err = mongoClient.Disconnect(ctx); err != nil {
		zapLogger.Error("failed to disconnect mongodb client", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
