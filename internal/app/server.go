package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/handler"
)

const shutdownTimeout = 30 * time.Second

// runServer запускает HTTP сервер и блокируется до отмены ctx
func (a *App) runServer(ctx context.Context) error {
	router := handler.NewRouter(a.registrationUseCase, a.healthChecker, a.config.RequestTimeout, a.logger)

	serverAddr := fmt.Sprintf(":%s", a.config.ServerPort)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ошибка при запуске сервера: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutdown signal received, stopping server")

	ctxServer, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	a.logger.Info("server stopped")
	return nil
}
