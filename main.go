// File: posada/main.go
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"posada/config"
	"posada/cron"
	"posada/data"
	"posada/database"
	convRepo "posada/database/repository/conversation"
	roomRepo "posada/database/repository/room"
	stepRepo "posada/database/repository/step"
	"posada/handlers"
	"posada/middleware"
	"posada/routes"
	"posada/services/chat"
	"posada/services/inventory"
	"posada/services/tasks"
	"posada/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	seedOnly := flag.Bool("seed", false, "load fixture catalogs and exit")
	flag.Parse()

	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// repositories.
	stepsRepo := stepRepo.NewMongoStepRepo()
	roomsRepo := roomRepo.NewMongoRoomRepo()
	mongoConvRepo := convRepo.NewMongoConversationRepo()

	if *seedOnly {
		if err := data.Seed(stepsRepo, roomsRepo, logger); err != nil {
			logger.Sugar().Fatalf("main: seeding failed: %v", err)
		}
		logger.Sugar().Info("main: seeding complete")
		return
	}

	utils.InitChatCache()
	cacheClient := utils.GetChatCacheClient()

	sessionTTL := time.Duration(config.AppConfig.SessionCacheTTLMin) * time.Minute
	conversations := convRepo.NewCachedConversationRepo(mongoConvRepo, cacheClient, sessionTTL, logger)

	// services.
	availability := &inventory.DefaultAvailabilityResolver{
		Rooms:         roomsRepo,
		Conversations: mongoConvRepo,
	}
	allocator := &inventory.DefaultAllocator{
		Rooms:         roomsRepo,
		Conversations: mongoConvRepo,
		Logger:        logger,
	}

	queueClient := asynq.NewClient(utils.QueueRedisOpt())
	defer queueClient.Close()
	expiry := &tasks.AsynqExpiryScheduler{Client: queueClient, TTL: sessionTTL}

	chatService := &chat.DefaultChatService{
		Steps:         stepsRepo,
		Rooms:         roomsRepo,
		Conversations: conversations,
		Availability:  availability,
		Allocator:     allocator,
		Expiry:        expiry,
		Logger:        logger,
	}

	cron.InitCleanupWorker(conversations, sessionTTL)
	utils.StartHealthMonitor(cacheClient, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimitMiddleware())

	chatHandler := handlers.NewChatHandler(chatService, logger)
	routes.RegisterRoutes(router, chatHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
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
