package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	readHeaderTimeout = 20 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Serve initializes the API and listens on port until ctx is cancelled,
// then drains in-flight requests and releases the runtime.
func Serve(ctx context.Context, port string, envFiles ...string) error {
	if err := InitializeHandlers(ctx, envFiles...); err != nil {
		return err
	}

	cfg, err := Config()
	if err != nil {
		return err
	}
	if port == "" {
		port = cfg.Port
	}

	router := gin.New()
	router.Use(gin.Recovery())
	InitializeRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("port", port), zap.String("stage", cfg.Stage))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	return Shutdown(shutdownCtx)
}
