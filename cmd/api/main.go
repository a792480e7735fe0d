package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"emotion-engine/internal/authtoken"
	"emotion-engine/internal/classifier"
	"emotion-engine/internal/config"
	"emotion-engine/internal/engine"
	"emotion-engine/internal/httpapi"
	"emotion-engine/internal/mapping"
	"emotion-engine/internal/ratelimit"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	manager := engine.New(engine.Config{
		MaxHistory:            cfg.MaxHistory,
		RuminationThreshold:   cfg.RuminationThreshold,
		RuminationMaxStages:   cfg.RuminationMaxStages,
		RuminationDecayFactor: cfg.RuminationDecayFactor,
		BaseHalfLifeHours:     cfg.BaseHalfLifeHours,
		CustomMapping:         map[string]mapping.Effect{},
	})

	classifierSvc, err := classifier.New(classifier.Options{
		APIKey:                cfg.ClassifierAPIKey,
		BaseURL:               cfg.ClassifierBaseURL,
		Model:                 cfg.ClassifierModel,
		ClassifierURL:         cfg.ClassifierURL,
		ConfidenceMin:         cfg.ClassifierConfidenceMin,
		ClassificationLogPath: cfg.ClassificationLogPath,
	}, logger)
	if err != nil {
		logger.Fatal("classifier init", zap.Error(err))
	}
	_ = classifierSvc // wired for inbound-text classification; today's stimulus endpoint takes pre-classified labels

	var limiter ratelimit.Limiter = ratelimit.NewNoop()
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = ratelimit.NewRedis(redisClient, time.Minute, 30)
		}
		cancel()
	}
	_ = limiter // will gate the classifier-backed stimulus route once that lands

	issuer := authtoken.New(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)

	handlers := httpapi.NewHandlers(
		logger,
		manager,
		cfg.StateDir,
		time.Duration(cfg.LockStaleTimeoutSeconds)*time.Second,
		25,
	)
	router := httpapi.NewRouter(logger, issuer, handlers)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
