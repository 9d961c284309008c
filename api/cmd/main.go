package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	zlog "github.com/rs/zerolog/log"

	"github.com/emtionre/satisfaction-service/internal/application/satisfaction"
	"github.com/emtionre/satisfaction-service/internal/config"
	"github.com/emtionre/satisfaction-service/internal/domain"
	rediscache "github.com/emtionre/satisfaction-service/internal/infrastructure/caching/redis"
	"github.com/emtionre/satisfaction-service/internal/infrastructure/db/sqlstore"
	"github.com/emtionre/satisfaction-service/internal/logger"
	"github.com/emtionre/satisfaction-service/internal/metrics"
	"github.com/emtionre/satisfaction-service/internal/transport/http/handlers"
	"github.com/emtionre/satisfaction-service/internal/transport/http/router"
)

// sysClock reports local wall-clock time, matching how detection rows are
// stamped. The zone is dropped before any day comparison.
type sysClock struct{}

func (sysClock) Now() time.Time { return time.Now() }

// App holds all dependencies for the service
type App struct {
	Config  *config.Config
	Server  *http.Server
	DB      *sql.DB
	Cache   *rediscache.Client
	Metrics *metrics.Metrics
}

func main() {
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("config load failed")
	}
	logger.InitWith(cfg.LogLevel, cfg.LogFormat, cfg.LogCaller)
	zlog.Info().Str("env", cfg.AppEnv).Msg("config loaded")

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialect, err := sqlstore.DialectFor(cfg.DBDriver)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db dialect")
	}
	db, err := sqlstore.Open(dialect, sqlstore.Options{
		Driver:          cfg.DBDriver,
		URL:             cfg.DatabaseURL,
		Host:            cfg.DBHost,
		Port:            cfg.DBPort,
		User:            cfg.DBUser,
		Password:        cfg.DBPass,
		Name:            cfg.DBName,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		ConnMaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		zlog.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	zlog.Info().
		Str("driver", cfg.DBDriver).
		Str("table", cfg.DBTable).
		Str("date_column", cfg.DBDateColumn).
		Msg("db config loaded")

	// an unreachable db is reported, not fatal; /db-ping keeps telling the truth
	if err := sqlstore.PingTimeout(rootCtx, db, 3*time.Second); err != nil {
		zlog.Error().Err(err).Msg("db ping failed, serving anyway")
	} else {
		zlog.Info().Msg("db connected")
	}

	var cache *rediscache.Client
	if cfg.RedisURL != "" {
		c, err := rediscache.New(cfg.RedisURL)
		if err != nil {
			zlog.Warn().Err(err).Msg("redis unavailable: running without cache")
		} else {
			cache = c
			defer cache.Close()
			zlog.Info().Msg("redis cache ready")
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	app, err := NewApp(cfg, db, cache, reg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("app wiring failed")
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		zlog.Info().Msg("shutting down")
	case err := <-errCh:
		zlog.Error().Err(err).Msg("server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		zlog.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// NewApp wires repository, cache, service and transport. cache may be nil.
func NewApp(cfg *config.Config, db *sql.DB, cache *rediscache.Client, reg *prometheus.Registry) (*App, error) {
	// 1) Infrastructure
	dialect, err := sqlstore.DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, err
	}
	repo, err := sqlstore.New(db, dialect, cfg.DBTable, cfg.DBDateColumn)
	if err != nil {
		return nil, err
	}
	m := metrics.New(reg)

	// 2) Application
	var svcCache satisfaction.Cache
	if cache != nil {
		svcCache = cache
	}
	svc := satisfaction.New(repo, sysClock{}, svcCache, m, satisfaction.Options{
		Scorer:     domain.NewScorer(cfg.Weights),
		SegmentGap: cfg.SegmentGap,
		TTLDay:     cfg.CacheTTLDay,
		TTLMinute:  cfg.CacheTTLMinute,
	})

	// 3) Transport
	h := handlers.NewSatisfactionHandler(svc)
	z := handlers.NewHealthHandler(svc, m)
	if cache != nil {
		z = z.WithCache(cache)
	}
	if cfg.RedisURL != "" {
		m.SetDependencyHealth("redis", cache != nil)
	}

	// 4) Router
	httpHandler := router.New(h, z, m, reg, cfg)

	// 5) Server
	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpHandler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return &App{
		Config:  cfg,
		Server:  srv,
		DB:      db,
		Cache:   cache,
		Metrics: m,
	}, nil
}
