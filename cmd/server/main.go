package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	redis_cache "skillshare-backend/internal/cache/redis"
	user_client "skillshare-backend/internal/clients/user"
	user_client_memory "skillshare-backend/internal/clients/user/memory"
	user_client_postgres "skillshare-backend/internal/clients/user/postgres"
	"skillshare-backend/internal/config"
	delivery_http "skillshare-backend/internal/delivery/http"
	"skillshare-backend/internal/logger"
	"skillshare-backend/internal/metrics"
	prometheus_metrics "skillshare-backend/internal/metrics/prometheus"
	learningplan_repository "skillshare-backend/internal/repository/learningplan"
	learningplan_memory "skillshare-backend/internal/repository/learningplan/memory"
	learningplan_postgres "skillshare-backend/internal/repository/learningplan/postgres"
	post_repository "skillshare-backend/internal/repository/post"
	post_memory "skillshare-backend/internal/repository/post/memory"
	post_postgres "skillshare-backend/internal/repository/post/postgres"
	learningplan_service "skillshare-backend/internal/service/learningplan"
	post_service "skillshare-backend/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	ctx := context.Background()

	provider := prometheus_metrics.NewMetricsProvider()
	provider.SetServiceHealth(true)

	var (
		postRepo   post_repository.Repository
		planRepo   learningplan_repository.Repository
		userClient user_client.Client
	)

	switch cfg.Storage.Backend {
	case "memory":
		log.Info("Using in-memory storage backend")
		postRepo = post_memory.NewPostRepository(log)
		planRepo = learningplan_memory.NewLearningPlanRepository(log)
		userClient = user_client_memory.NewUserClient()
	default:
		dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DbName)

		if err := runMigrations(cfg.Database.MigrationsPath, dsn); err != nil {
			log.Error("Failed to run migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}

		poolConfig, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
			os.Exit(1)
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		postRepo = post_postgres.NewPostRepository(pool, log, provider)
		planRepo = learningplan_postgres.NewLearningPlanRepository(pool, log, provider)
		userClient = user_client_postgres.NewUserClient(pool, log)
	}

	if cfg.Redis.Enabled {
		log.Info("Connecting to Redis",
			slog.String("address", cfg.Redis.Address),
			slog.Int("port", cfg.Redis.Port),
			slog.Int("db", cfg.Redis.DB))
		redisClient, err := redis_cache.NewClient(cfg.Redis, log)
		if err != nil {
			log.Error("Failed to create Redis client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
			}
		}()

		userCache := redis_cache.NewUserCache(redisClient, log, provider)
		userClient = user_client.NewCachedClient(userClient, userCache, log)
	}

	postService := post_service.NewPostService(postRepo, userClient, log, provider)
	planService := learningplan_service.NewLearningPlanService(planRepo, log, provider)

	httpServer := delivery_http.NewServer(cfg, postService, planService, log, provider)
	metricsServer := metrics.NewServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	provider.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(migrationsPath, dsn string) error {
	m, err := migrate.New("file://"+migrationsPath, dsn)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}
