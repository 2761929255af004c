package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/RegisterApp/internal/config"
	"github.com/GoArmGo/RegisterApp/internal/core/ports"
	"github.com/GoArmGo/RegisterApp/internal/usecase"
)

const (
	ModeServer = "server"
	ModeWorker = "worker"
)

type App struct {
	config              *config.Config
	logger              *slog.Logger
	healthChecker       ports.HealthChecker
	registrationUseCase usecase.RegistrationUseCase
	archiveUseCase      usecase.RegistrationArchiveUseCase
	registeredConsumer  ports.UserRegisteredConsumer
	closers             []io.Closer
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	healthChecker ports.HealthChecker,
	registrationUseCase usecase.RegistrationUseCase,
	archiveUseCase usecase.RegistrationArchiveUseCase,
	registeredConsumer ports.UserRegisteredConsumer,
	closers ...io.Closer,
) *App {
	return &App{
		config:              cfg,
		logger:              logger,
		healthChecker:       healthChecker,
		registrationUseCase: registrationUseCase,
		archiveUseCase:      archiveUseCase,
		registeredConsumer:  registeredConsumer,
		closers:             closers,
	}
}

// LoggerIns возвращает основной логгер приложения
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

// Run запускает приложение в выбранном режиме и ждёт SIGINT/SIGTERM
func (a *App) Run(ctx context.Context, mode string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("running", "mode", mode)

	var err error
	switch mode {
	case ModeServer:
		err = a.runServer(ctx)
	case ModeWorker:
		err = a.runWorker(ctx)
	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте '%s' или '%s')", mode, ModeServer, ModeWorker)
	}

	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown error", "error", closeErr)
	}

	return err
}

// Shutdown закрывает все ресурсы приложения в обратном порядке
func (a *App) Shutdown() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
