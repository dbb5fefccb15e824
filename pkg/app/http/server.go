package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/ethbridge-events/pkg/app/httpserver"
	"github.com/chainsafe/ethbridge-events/pkg/config"
)

// NewServer builds an *http.Server for handler from the server config.
func NewServer(handler http.Handler, cfg *config.ServerConfig) (*http.Server, error) {
	if handler == nil {
		return nil, fmt.Errorf("nil handler")
	}
	if cfg == nil {
		return nil, fmt.Errorf("nil server config")
	}
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}, nil
}

// ServeAndWait serves handler with the given config until ctx is canceled or
// the server fails, then shuts it down within shutdownTimeout.
func ServeAndWait(
	ctx context.Context,
	handler http.Handler,
	logger *zap.Logger,
	cfg *config.ServerConfig,
	shutdownTimeout time.Duration,
) error {
	srv, err := NewServer(handler, cfg)
	if err != nil {
		return err
	}
	return httpserver.ServeAndWait(ctx, logger, srv, shutdownTimeout)
}
