package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	paymentsv1 "github.com/Lexv0lk/payment-service/api/payments/v1"
	"github.com/Lexv0lk/payment-service/internal/gateway/domain"
	grpcwrap "github.com/Lexv0lk/payment-service/internal/gateway/grpc"
	httpwrap "github.com/Lexv0lk/payment-service/internal/gateway/infrastructure/http"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	shutdownTimeout = 5 * time.Second
)

type GatewayApp struct {
	cfg    GatewayConfig
	logger logging.Logger

	server *http.Server
}

func NewGatewayApp(cfg GatewayConfig, logger logging.Logger) *GatewayApp {
	return &GatewayApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *GatewayApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	grpcPaymentsConn, err := grpc.NewClient(
		cfg.GrpcPaymentsHost+cfg.GrpcPaymentsPort,
		grpc.WithUnaryInterceptor(grpcwrap.NewJWTTokenInterceptor),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to payments grpc server: %w", err)
	}
	defer grpcPaymentsConn.Close()

	paymentService := grpcwrap.NewPaymentsAdapter(paymentsv1.NewPaymentServiceClient(grpcPaymentsConn))

	a.server = &http.Server{
		Addr:              cfg.HttpPort,
		Handler:           NewRouter(paymentService, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Info("starting http server", "address", cfg.HttpPort)
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("error while starting http server: %w", err)
			return
		}

		errChan <- nil
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return nil
	}
}

func (a *GatewayApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}
}

func NewRouter(paymentService domain.PaymentService, logger logging.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	paymentHandler := httpwrap.NewPaymentHandler(paymentService, logger)

	api := router.Group("/api", httpwrap.NewAuthMiddleware())
	{
		api.POST("/payments", paymentHandler.MakePayment)
		api.GET("/accounts/:"+httpwrap.AccountNumberKey, paymentHandler.GetAccount)
	}

	return router
}
