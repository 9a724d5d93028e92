// File: niryaat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"niryaat/config"
	"niryaat/cron"
	"niryaat/database"
	accountRepoPkg "niryaat/database/repository/account"
	notificationRepoPkg "niryaat/database/repository/notification"
	profileRepoPkg "niryaat/database/repository/profile"
	ratingRepoPkg "niryaat/database/repository/rating"
	tradeRepoPkg "niryaat/database/repository/trade"
	"niryaat/handlers"
	"niryaat/middleware"
	"niryaat/routes"
	"niryaat/services/access"
	"niryaat/services/session"
	"niryaat/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	profileRepo := profileRepoPkg.NewMongoProfileRepo()
	tradeRepo := tradeRepoPkg.NewMongoTradeRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	ratingRepo := ratingRepoPkg.NewMongoRatingRepo()

	// session registry and static access policy.
	registry := session.NewRegistry(accountRepo, profileRepo)
	policy := access.DefaultPolicy()

	// approval pipeline.
	approvalClient := cron.NewApprovalClient()
	defer approvalClient.Close()
	cron.InitApprovalWorker(registry, notificationRepo)

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		Auth:          handlers.NewAuthHandler(registry),
		Dashboard:     handlers.NewDashboardHandler(tradeRepo, notificationRepo),
		Profile:       handlers.NewProfileHandler(profileRepo),
		Benefits:      handlers.NewBenefitsHandler(tradeRepo),
		Tariff:        handlers.NewTariffHandler(tradeRepo),
		Market:        handlers.NewMarketHandler(tradeRepo),
		Country:       handlers.NewCountryHandler(tradeRepo),
		Ratings:       handlers.NewRatingHandler(ratingRepo),
		Notifications: handlers.NewNotificationHandler(notificationRepo),
		Admin:         handlers.NewAdminHandler(profileRepo, approvalClient),
	}

	routes.RegisterRoutes(router, handlerBundle, registry, policy)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
