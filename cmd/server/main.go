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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dicebag/internal/config"
	"github.com/KirkDiggler/dicebag/internal/handlers/api"
	"github.com/KirkDiggler/dicebag/internal/randomorg"
	poolRepo "github.com/KirkDiggler/dicebag/internal/repositories/pool"
	usageRepo "github.com/KirkDiggler/dicebag/internal/repositories/usage"
	userRepo "github.com/KirkDiggler/dicebag/internal/repositories/user"
	"github.com/KirkDiggler/dicebag/internal/services/cleanup"
	poolService "github.com/KirkDiggler/dicebag/internal/services/pool"
	recoveryService "github.com/KirkDiggler/dicebag/internal/services/recovery"
	"github.com/KirkDiggler/dicebag/internal/services/tracker"
	userService "github.com/KirkDiggler/dicebag/internal/services/user"
)

func main() {
	// Load .env if present, real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("[Server] Skipping .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()

	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	pools, err := poolRepo.NewRedis(&poolRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create pool repository: %v", err)
	}

	usage, err := usageRepo.NewRedis(&usageRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create usage repository: %v", err)
	}

	users, err := userRepo.NewRedis(&userRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create user repository: %v", err)
	}

	// Initialize the random.org client
	randomClient, err := randomorg.New(&randomorg.Config{
		APIKey: cfg.RandomOrgAPIKey,
		URL:    cfg.RandomOrgURL,
	})
	if err != nil {
		log.Fatalf("Failed to create random.org client: %v", err)
	}

	// Initialize services
	trackerSvc, err := tracker.New(&tracker.Config{
		UsageRepo:  usage,
		DailyLimit: cfg.PublicDailyLimit,
	})
	if err != nil {
		log.Fatalf("Failed to create usage tracker: %v", err)
	}

	poolSvc, err := poolService.New(&poolService.Config{
		PoolRepo:       pools,
		Tracker:        trackerSvc,
		RandomClient:   randomClient,
		PublicPoolSize: cfg.PublicPoolSize,
		UserPoolSize:   cfg.UserPoolSize,
		MaxDicePerType: config.MaxDicePerType,
	})
	if err != nil {
		log.Fatalf("Failed to create pool service: %v", err)
	}

	recoverySvc, err := recoveryService.New(&recoveryService.Config{
		PoolRepo:         pools,
		PoolService:      poolSvc,
		LowPoolThreshold: config.LowPoolThreshold,
	})
	if err != nil {
		log.Fatalf("Failed to create recovery service: %v", err)
	}

	userSvc, err := userService.New(&userService.Config{
		UserRepo:    users,
		JWTSecret:   cfg.JWTSecret,
		TokenExpiry: cfg.JWTExpiry,
	})
	if err != nil {
		log.Fatalf("Failed to create user service: %v", err)
	}

	cleanupSvc, err := cleanup.New(&cleanup.Config{
		UsageRepo:     usage,
		RetentionDays: cfg.UsageRetentionDays,
		Interval:      cfg.CleanupInterval,
	})
	if err != nil {
		log.Fatalf("Failed to create cleanup service: %v", err)
	}

	// Ensure the public pools exist before serving traffic
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelInit()

	if err := recoverySvc.InitializePools(initCtx); err != nil {
		log.Fatalf("Failed to initialize pools: %v", err)
	}

	cleanupSvc.Start(context.Background())

	// Initialize the HTTP handler and router
	handler, err := api.New(&api.Config{
		PoolService:      poolSvc,
		UserService:      userSvc,
		RecoveryService:  recoverySvc,
		CORSOrigin:       cfg.CORSOrigin,
		MaxDicePerType:   config.MaxDicePerType,
		MaxDicePerRoll:   cfg.MaxDicePerRoll,
		RollRateLimit:    cfg.RollRateLimit,
		RollRateWindow:   cfg.RollRateWindow,
		StatusRateLimit:  cfg.StatusRateLimit,
		StatusRateWindow: cfg.StatusRateWindow,
	})
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.NewRouter(handler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[Server] Listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM)
	<-sc

	log.Println("[Server] Shutting down")

	cleanupSvc.Stop()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Server] Shutdown error: %v", err)
	}

	if err := redisClient.Close(); err != nil {
		log.Printf("[Server] Redis close error: %v", err)
	}

	log.Println("[Server] Stopped")
}
