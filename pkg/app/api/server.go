// Package api implements app.Runner for the events API server process.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	apphttp "github.com/chainsafe/ethbridge-events/pkg/app/http"
	"github.com/chainsafe/ethbridge-events/pkg/config"
	"github.com/chainsafe/ethbridge-events/pkg/events/service"
)

const defaultRequestTimeout = 60 * time.Second

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run serves the events API, and the metrics endpoint when monitoring is
// enabled, until an OS shutdown signal is received or a server fails.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting events API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
		zap.String("store", cfg.Store.Backend),
	)

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("Failed to close event store", zap.Error(err))
		}
	}()

	eventService := service.NewLog(service.NewService(store, logger), logger)
	router := s.setupRouter(eventService, logger)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return apphttp.ServeAndWait(gctx, router, logger, &cfg.Server, cfg.Shutdown.Timeout)
	})
	if cfg.Monitoring.Enabled {
		g.Go(func() error {
			return apphttp.ServeAndWait(gctx, metricsRouter(), logger.Named("metrics"), &config.ServerConfig{
				Host:         cfg.Server.Host,
				Port:         cfg.Monitoring.MetricsPort,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
				IdleTimeout:  cfg.Server.IdleTimeout,
			}, cfg.Shutdown.Timeout)
		})
	}
	return g.Wait()
}

func (s *Server) setupRouter(eventService service.Service, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(defaultRequestTimeout))
	r.Use(apphttp.InstrumentRequests)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	service.RegisterRoutes(r, eventService, logger, s.cfg.Server.MaxBodyBytes)

	return r
}

func metricsRouter() chi.Router {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	return r
}
