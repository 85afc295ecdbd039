package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/payment-service/internal/payments/bootstrap"
	"github.com/Lexv0lk/payment-service/internal/pkg/database"
	"github.com/Lexv0lk/payment-service/internal/pkg/env"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
)

const (
	networkProtocol = "tcp"
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

	grpcPort := ":9090"
	metricsPort := ":9100"
	store := bootstrap.StorePostgres
	jwtSecret := ""
	natsURL := ""
	databaseSettings := database.PostgresSettings{
		User:       "admin",
		Password:   "password",
		Host:       "localhost",
		Port:       "5432",
		DBName:     "payments_db",
		SSlEnabled: false,
	}

	env.TrySetFromEnv(env.EnvGrpcPaymentsPort, &grpcPort)
	env.TrySetFromEnv(env.EnvMetricsPort, &metricsPort)
	env.TrySetFromEnv(env.EnvPaymentsStore, &store)
	env.TrySetFromEnv(env.EnvJwtSecret, &jwtSecret)
	env.TrySetFromEnv(env.EnvNatsURL, &natsURL)
	env.TrySetFromEnv(env.EnvDatabaseHost, &databaseSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &databaseSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &databaseSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &databaseSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &databaseSettings.DBName)
	env.TrySetBoolFromEnv(env.EnvDatabaseSSL, &databaseSettings.SSlEnabled)

	cfg := bootstrap.PaymentsConfig{
		DbSettings:  databaseSettings,
		Store:       store,
		MetricsPort: metricsPort,
		JwtSecret:   jwtSecret,
		NatsURL:     natsURL,
	}

	lis, err := net.Listen(networkProtocol, grpcPort)
	if err != nil {
		logger.Error("failed to listen", "port", grpcPort, "error", err.Error())
		return
	}

	app := bootstrap.NewPaymentsApp(cfg, logger.Named("payments"))
	defer app.Shutdown()

	if err := app.Run(mainCtx, lis); err != nil {
		logger.Error("payments service stopped with error", "error", err.Error())
	}
}
