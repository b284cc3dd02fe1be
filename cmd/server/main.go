package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/promptpix/promptpix/pkg/service"
	"github.com/promptpix/promptpix/pkg/service/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setupResult, err := setup.Setup(ctx)
	if err != nil {
		slog.Error("failed to setup", "error", err)
		return
	}

	serviceConfig, err := service.NewServiceConfigFromSetupResult(ctx, setupResult)
	if err != nil {
		slog.Error("failed to create service config", "error", err)
		return
	}

	svc, err := service.NewService(serviceConfig)
	if err != nil {
		slog.Error("failed to create service", "error", err)
		return
	}

	if err := svc.StartServer(ctx); err != nil {
		slog.Error("server error", "error", err)
	}
}
