package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/odontotech/clinic-scheduling/internal/api"
	"github.com/odontotech/clinic-scheduling/internal/clinic"
	"github.com/odontotech/clinic-scheduling/internal/config"
	"github.com/odontotech/clinic-scheduling/internal/db"
	redisclient "github.com/odontotech/clinic-scheduling/internal/redis"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("config load error")
	}

	log := newLogger(cfg.Env)
	log.Info().
		Str("env", cfg.Env).
		Str("http_port", cfg.HTTPPort).
		Int("slot_start_hour", cfg.SlotStartHour).
		Int("slot_end_hour", cfg.SlotEndHour).
		Msg("api-server starting up")

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		pgPool *pgxpool.Pool
		rdb    *redis.Client
		repo   clinic.Repository
		locker redisclient.Locker
	)

	if cfg.PostgresDSN != "" {
		pgCtx, cancelPg := context.WithTimeout(rootCtx, 10*time.Second)
		pgPool, err = db.ConnectPostgres(pgCtx, cfg.PostgresDSN)
		cancelPg()
		if err != nil {
			log.Fatal().Err(err).Msg("postgres connection error")
		}
		defer pgPool.Close()
		repo = clinic.NewPgRepository(pgPool)
		log.Info().Msg("using postgres store")
	} else {
		memory := clinic.NewMemoryRepository()
		memory.Seed(clinic.SeedProfessionals(), clinic.SeedPatients())
		repo = memory
		log.Info().Msg("using in-memory store with seed roster")
	}

	if cfg.RedisAddr != "" {
		rdb, err = redisclient.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection error")
		}
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Warn().Err(err).Msg("error closing redis")
			}
		}()
		locker = redisclient.NewRedisSlotLocker(rdb, cfg.LockTTL)
		log.Info().Msg("using redis slot locking")
	} else {
		locker = clinic.NewLocalLocker()
	}

	catalog := clinic.NewSlotCatalog(cfg.SlotStartHour, cfg.SlotEndHour)
	svc := clinic.NewService(repo, catalog, locker, log)

	router := api.NewRouter(api.RouterConfig{
		Service: svc,
		Logger:  log,
		PgPool:  pgPool,
		Redis:   rdb,
		Env:     cfg.Env,
		Version: version,
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("api-server stopped")
}

func newLogger(env string) zerolog.Logger {
	if env == "prod" {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}
