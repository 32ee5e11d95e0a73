package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/neexbeast/itinerary-planner/internal/api"
	"github.com/neexbeast/itinerary-planner/internal/cache"
	"github.com/neexbeast/itinerary-planner/internal/config"
	"github.com/neexbeast/itinerary-planner/internal/destination"
	"github.com/neexbeast/itinerary-planner/internal/planner"
	"github.com/neexbeast/itinerary-planner/internal/storage"
	"github.com/neexbeast/itinerary-planner/internal/textgen"
	"github.com/neexbeast/itinerary-planner/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	slog.SetDefault(log)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", "err", err)
		os.Exit(1)
	}
}

// catalog is what the server needs from a POI source.
type catalog interface {
	destination.Catalog
	api.DestinationLister
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx := context.Background()

	var (
		cat      catalog = destination.DefaultCatalog()
		dbPinger api.Pinger
	)

	// PostgreSQL catalog, seeded with the built-in destinations.
	if cfg.DatabaseURL != "" {
		pool, err := storage.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer pool.Close()

		if err := storage.RunMigrations(ctx, pool, migrations.FS); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		log.Info("migrations applied")

		repo := storage.NewRepository(pool)
		if err := repo.Seed(ctx, destination.DefaultCatalog().Entries()); err != nil {
			return err
		}
		cat = repo
		dbPinger = &pgxPoolPinger{pool: pool}
	} else {
		log.Info("DATABASE_URL not set, using built-in catalog")
	}

	writer, redisPinger, closeWriter, err := newWriter(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeWriter()

	// Wire dependencies.
	profiles := planner.DefaultProfiles()
	enricher := destination.NewEnricher(writer, cfg.EnrichConcurrency, log)
	p := planner.New(cat, enricher, profiles, log)
	handlers := api.NewHandlers(p, cat, profiles, log)

	router := api.NewRouter(handlers, api.RouterConfig{
		CORSOrigins: cfg.CORSOrigins,
		Database:    dbPinger,
		Redis:       redisPinger,
		Log:         log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error("server goroutine panicked", "recover", r)
				errCh <- fmt.Errorf("server panicked: %v", r)
			}
		}()
		log.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("listening: %w", err)
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown signal received", "signal", sig)
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server shut down cleanly")
	return nil
}

// newWriter builds the description Writer: Gemini when an API key is set,
// wrapped in the Redis cache when REDIS_URL is also set. Unconfigured pieces
// are returned as nil interfaces. The returned func releases the Redis client.
func newWriter(ctx context.Context, cfg config.Config, log *slog.Logger) (destination.Writer, api.Pinger, func(), error) {
	noop := func() {}

	if cfg.GeminiAPIKey == "" {
		log.Info("GEMINI_API_KEY not set, using template descriptions")
		if cfg.RedisURL != "" {
			log.Warn("REDIS_URL set without GEMINI_API_KEY, description cache disabled")
		}
		return nil, nil, noop, nil
	}

	client, err := textgen.NewGeminiClient(textgen.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		Timeout: cfg.TextGenTimeout,
	})
	if err != nil {
		return nil, nil, noop, fmt.Errorf("creating text generator: %w", err)
	}

	if cfg.RedisURL == "" {
		return client, nil, noop, nil
	}

	redisClient, err := cache.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, nil, noop, fmt.Errorf("connecting to redis: %w", err)
	}

	writer := cache.NewCachedWriter(cache.NewCache(redisClient, cfg.DescriptionCacheTTL), client, log)
	return writer, &redisPingerAdapter{client: redisClient}, func() { _ = redisClient.Close() }, nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// pgxPoolPinger adapts pgxpool.Pool to api.Pinger.
type pgxPoolPinger struct {
	pool interface {
		Ping(ctx context.Context) error
	}
}

func (p *pgxPoolPinger) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// redisPingerAdapter adapts redis.Client to api.Pinger.
type redisPingerAdapter struct {
	client *redis.Client
}

func (r *redisPingerAdapter) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
