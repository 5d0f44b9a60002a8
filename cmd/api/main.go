package main

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/fortune-club/internal/config"
	dbpkg "github.com/BruksfildServices01/fortune-club/internal/db"
	"github.com/BruksfildServices01/fortune-club/internal/infra/ratelimit"
	"github.com/BruksfildServices01/fortune-club/internal/infra/storage"
	"github.com/BruksfildServices01/fortune-club/internal/realtime"
	"github.com/BruksfildServices01/fortune-club/internal/routes"
	ucConversation "github.com/BruksfildServices01/fortune-club/internal/usecase/conversation"
)

func main() {

	cfg := config.MustLoad()

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	db := dbpkg.NewDB(cfg)

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Logger: logger,
		Hub:    realtime.NewHub(),
	}

	// ======================================================
	// OPTIONAL INFRA
	// ======================================================
	deps.Limiter = newLimiter(cfg, logger)

	if cfg.StorageEnabled() {
		deps.Store = storage.NewS3Store(
			storage.NewS3Client(cfg),
			cfg.S3Bucket,
			cfg.S3PublicBaseURL,
		)
	} else {
		logger.Warn("S3 credentials missing, uploads disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, deps)

	logger.Info("server starting", slog.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}

// newLimiter returns nil when redis is not configured or limiting is off.
func newLimiter(cfg *config.Config, logger *slog.Logger) ucConversation.Limiter {
	if cfg.RedisAddr == "" || cfg.MessageRateLimit == 0 {
		logger.Info("message rate limiting disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, limiter will fail open", slog.String("error", err.Error()))
	}

	return ratelimit.NewMessageLimiter(client, cfg.MessageRateLimit, time.Minute)
}
