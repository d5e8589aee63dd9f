package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rogerio-castellano/soda-stock/internal/config"
	"github.com/rogerio-castellano/soda-stock/internal/db"
	"github.com/rogerio-castellano/soda-stock/internal/http/handlers"
	rl "github.com/rogerio-castellano/soda-stock/internal/http/rate_limiter"
	"github.com/rogerio-castellano/soda-stock/internal/http/router"
	"github.com/rogerio-castellano/soda-stock/internal/logger"
	"github.com/rogerio-castellano/soda-stock/internal/metrics"
	"github.com/rogerio-castellano/soda-stock/internal/redissvc"
	"github.com/rogerio-castellano/soda-stock/internal/repo"
	"github.com/rogerio-castellano/soda-stock/internal/service"
)

const visitorCleanupInterval = time.Minute

// @title Soda Stock API
// @version 1.0
// @description REST API for managing soda stock levels.
// @host localhost:8080
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "soda-stock: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	configPath := flag.String("config", os.Getenv("SODASTOCK_CONFIG"), "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "soda-stock",
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer st.close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	svc := service.NewSodaService(st.sodas, service.WithLogger(logg), service.WithMetrics(recorder))

	var limiter *rl.Limiter
	if cfg.RateLimit.Enabled {
		limiter = rl.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL)
		go limiter.StartVisitorCleanupLoop(ctx, visitorCleanupInterval)
	}

	handler := router.New(router.Deps{
		TrustProxy: cfg.Server.TrustProxy,
		Logger:   logg,
		Sodas:    handlers.NewSodaHandler(svc, logg),
		Metrics:  handlers.NewMetricsHandler(st.metrics, logg),
		Health:   handlers.NewHealthHandler(st.pinger, logg),
		Limiter:  limiter,
		Recorder: recorder,
		Gatherer: reg,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(logg.WithFields(ctx, map[string]any{"addr": srv.Addr, "store": cfg.Store.Driver}), "server.start")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logg.Info(context.Background(), "server.shutdown")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

type store struct {
	sodas   repo.SodaRepository
	metrics repo.MetricsRepository
	pinger  repo.Pinger
	close   func()
}

func openStore(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		conn, err := db.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connecting to postgres: %w", err)
		}
		if cfg.Database.Migrate {
			if err := db.Migrate(ctx, conn); err != nil {
				conn.Close()
				return nil, fmt.Errorf("migrating postgres: %w", err)
			}
			if v, err := db.Version(conn); err == nil {
				logg.Info(logg.WithField(ctx, "version", v), "db.migrated")
			}
		}
		sodas := repo.NewPostgresSodaRepository(conn)
		return &store{
			sodas:   sodas,
			metrics: repo.NewPostgresMetricsRepository(conn),
			pinger:  sodas,
			close:   func() { conn.Close() },
		}, nil

	case config.DriverSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLite)
		if err != nil {
			return nil, fmt.Errorf("opening sqlite: %w", err)
		}
		sodas := repo.NewGormSodaRepository(gdb)
		return &store{
			sodas:   sodas,
			metrics: repo.NewSodaMetricsRepository(sodas),
			pinger:  sodas,
			close: func() {
				if sqlDB, err := gdb.DB(); err == nil {
					sqlDB.Close()
				}
			},
		}, nil

	case config.DriverRedis:
		rs, err := redissvc.New(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		sodas := repo.NewRedisSodaRepository(rs.Rdb(), rs.KeyPrefix())
		return &store{
			sodas:   sodas,
			metrics: repo.NewSodaMetricsRepository(sodas),
			pinger:  sodas,
			close:   func() { rs.Close() },
		}, nil

	default:
		sodas := repo.NewInMemorySodaRepository()
		return &store{
			sodas:   sodas,
			metrics: repo.NewSodaMetricsRepository(sodas),
			pinger:  sodas,
			close:   func() {},
		}, nil
	}
}
