package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/payment-service/internal/gateway/bootstrap"
	"github.com/Lexv0lk/payment-service/internal/pkg/env"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logDev := false
	env.TrySetBoolFromEnv(env.EnvLogDev, &logDev)

	logger, err := logging.NewZapLogger(logDev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	if !logDev {
		gin.SetMode(gin.ReleaseMode)
	}

	cfg := bootstrap.GatewayConfig{
		GrpcPaymentsHost: "localhost",
		GrpcPaymentsPort: ":9090",
		HttpPort:         ":8080",
	}

	env.TrySetFromEnv(env.EnvGrpcPaymentsHost, &cfg.GrpcPaymentsHost)
	env.TrySetFromEnv(env.EnvGrpcPaymentsPort, &cfg.GrpcPaymentsPort)
	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)

	app := bootstrap.NewGatewayApp(cfg, logger.Named("gateway"))
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("gateway stopped with error", "error", err.Error())
	}
}
