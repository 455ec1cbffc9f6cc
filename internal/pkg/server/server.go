package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/mrshoofer/mrshoofer/internal/pkg/logger"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer runs an Echo server until its context is cancelled, then
// drains in-flight requests and shuts registered components down.
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	address         string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a server from the Server config section
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, cfg models.ServerConfig) *GracefulServer {
	if cfg.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(cfg.ReadTimeout) * time.Second
	}
	if cfg.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(cfg.WriteTimeout) * time.Second
	}
	timeout := defaultShutdownTimeout
	if cfg.ShutdownTimeout > 0 {
		timeout = time.Duration(cfg.ShutdownTimeout) * time.Second
	}

	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		address:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		shutdownTimeout: timeout,
		components:      NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a cleanup function run after the HTTP server stops
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.components.Register(fn)
}

// Run blocks until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.address))
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			s.logger.Error("HTTP server failed", logger.Err(err))
			s.shutdownComponents()
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server and then the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}
	s.components.Shutdown(ctx)

	s.logger.Info("Server shutdown completed")
	return err
}

func (s *GracefulServer) shutdownComponents() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.components.Shutdown(ctx)
}

// ShutdownManager runs cleanup functions in reverse registration order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates an empty shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown runs every cleanup function; one failing does not stop the rest
func (sm *ShutdownManager) Shutdown(ctx context.Context) {
	for i := len(sm.functions) - 1; i >= 0; i-- {
		if err := sm.functions[i](ctx); err != nil {
			sm.logger.Error("Error during component shutdown", logger.Int("component", i), logger.Err(err))
		}
	}
}
