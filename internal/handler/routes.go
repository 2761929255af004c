package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/RegisterApp/internal/core/ports"
	"github.com/GoArmGo/RegisterApp/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter собирает chi-роутер со всеми маршрутами сервиса.
func NewRouter(
	registration usecase.RegistrationUseCase,
	health ports.HealthChecker,
	requestTimeout time.Duration,
	logger *slog.Logger,
) http.Handler {
	registrationHandler := NewRegistrationHandler(registration, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Post("/register", registrationHandler.Register)
	r.Get("/health", HealthHandler(health, logger))

	return r
}
