package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/GoArmGo/RegisterApp/internal/app"
	"github.com/GoArmGo/RegisterApp/internal/di"
)

func main() {
	mode := flag.String("mode", app.ModeServer, "Режим запуска приложения: server или worker")
	flag.Parse()

	// bootstrap-логгер (используется только на этапе инициализации)
	bootstrapLogger := slog.New(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)
	bootstrapLogger.Info("starting application", "mode", *mode)

	ctx := context.Background()

	application, err := di.BuildApp(ctx, *mode)
	if err != nil {
		bootstrapLogger.Error("failed to build app", "error", err)
		os.Exit(1)
	}

	logger := application.LoggerIns()

	if err := application.Run(ctx, *mode); err != nil {
		logger.Error("application run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
