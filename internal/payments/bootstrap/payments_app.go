package bootstrap

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	paymentsv1 "github.com/Lexv0lk/payment-service/api/payments/v1"
	"github.com/Lexv0lk/payment-service/internal/pkg/database"
	"github.com/Lexv0lk/payment-service/internal/pkg/jwt"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"github.com/Lexv0lk/payment-service/internal/pkg/metrics"
	"github.com/Lexv0lk/payment-service/internal/payments/application"
	"github.com/Lexv0lk/payment-service/internal/payments/domain"
	grpcwrap "github.com/Lexv0lk/payment-service/internal/payments/grpc"
	"github.com/Lexv0lk/payment-service/internal/payments/infrastructure/memory"
	natswrap "github.com/Lexv0lk/payment-service/internal/payments/infrastructure/nats"
	"github.com/Lexv0lk/payment-service/internal/payments/infrastructure/postgres"
	"github.com/Lexv0lk/payment-service/migrations"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const (
	shutdownTimeout = 5 * time.Second

	migrationsDriver  = "pgx"
	migrationsDialect = "postgres"
)

type PaymentsApp struct {
	cfg    PaymentsConfig
	logger logging.Logger

	server        *grpc.Server
	metricsServer *http.Server
	dbpool        *pgxpool.Pool
	natsConn      *nats.Conn

	shutdownOnce sync.Once
}

func NewPaymentsApp(cfg PaymentsConfig, logger logging.Logger) *PaymentsApp {
	return &PaymentsApp{
		cfg:    cfg,
		logger: logger,
	}
}

// Run serves gRPC on grpcLis and metrics on the configured port until ctx is done or a server fails.
func (a *PaymentsApp) Run(ctx context.Context, grpcLis net.Listener) error {
	logger := a.logger

	if err := a.cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid payments config")
	}

	dataStore, journal, err := a.buildStores(ctx)
	if err != nil {
		return err
	}

	var publisher domain.PaymentEventPublisher
	if a.cfg.NatsURL != "" {
		conn, err := natswrap.Connect(a.cfg.NatsURL, logger)
		if err != nil {
			return err
		}

		a.natsConn = conn
		publisher = natswrap.NewEventPublisher(conn)
	} else {
		logger.Warn("nats url is not set, payment events are disabled")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	paymentMetrics, err := metrics.NewPaymentMetrics(registry)
	if err != nil {
		return err
	}

	paymentCase := application.NewPaymentCase(dataStore, logger)
	accountCase := application.NewAccountCase(dataStore)
	paymentServer := grpcwrap.NewPaymentServerGRPC(paymentCase, accountCase, journal, publisher, paymentMetrics, logger)

	a.server = createGRPCServer(paymentServer, jwt.NewJWTTokenParser(), a.cfg.JwtSecret, logger)
	a.metricsServer = &http.Server{
		Addr:              a.cfg.MetricsPort,
		Handler:           metrics.NewDebugMux(registry, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting gRPC server", "address", grpcLis.Addr().String(), "store", a.cfg.Store)

		if err := a.server.Serve(grpcLis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return errors.Wrap(err, "failed to serve gRPC")
		}

		return nil
	})

	group.Go(func() error {
		logger.Info("starting metrics server", "address", a.cfg.MetricsPort)

		if err := a.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "failed to serve metrics")
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		a.Shutdown()
		return nil
	})

	return group.Wait()
}

func (a *PaymentsApp) buildStores(ctx context.Context) (domain.DataStore, domain.PaymentsJournal, error) {
	if a.cfg.Store == StoreMemory {
		a.logger.Warn("using in-memory payments store, data is lost on restart")

		store := memory.NewAccountsStore()
		store.Seed(demoAccounts()...)

		return store, memory.NewPaymentsJournal(), nil
	}

	dbURL := a.cfg.DbSettings.GetUrl()

	err := database.MigrateDatabase(dbURL, migrations.FS, migrations.Dir, migrationsDriver, migrationsDialect)
	if err != nil {
		return nil, nil, err
	}

	dbpool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to database")
	}
	a.dbpool = dbpool

	txManager := database.NewDelegateTxManager(dbpool, a.logger)

	return postgres.NewAccountsRepository(dbpool, txManager), postgres.NewPaymentsJournal(dbpool), nil
}

func (a *PaymentsApp) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.logger.Info("shutting down payments service")

		if a.server != nil {
			a.server.GracefulStop()
		}

		if a.metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if err := a.metricsServer.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("metrics server shutdown failed", "error", err.Error())
			}
		}

		if a.natsConn != nil {
			if err := a.natsConn.Drain(); err != nil {
				a.logger.Warn("failed to drain nats connection", "error", err.Error())
			}
		}

		if a.dbpool != nil {
			a.dbpool.Close()
		}

		a.logger.Info("payments service stopped")
	})
}

func createGRPCServer(
	paymentServer *grpcwrap.PaymentServerGRPC,
	tokenParser jwt.TokenParser,
	secretKey string,
	logger logging.Logger,
) *grpc.Server {
	authInterceptorFabric := grpcwrap.NewAuthInterceptorFabric(secretKey, tokenParser, logger)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(authInterceptorFabric.GetInterceptor()),
	)
	paymentsv1.RegisterPaymentServiceServer(grpcServer, paymentServer)

	return grpcServer
}

// demoAccounts mirrors the rows seeded by the migrations.
func demoAccounts() []domain.Account {
	return []domain.Account{
		{
			AccountNumber:         "10000001",
			AllowedPaymentSchemes: domain.NewAllowedPaymentSchemes(domain.FasterPayments, domain.Chaps, domain.Bacs),
			Status:                domain.Live,
			Balance:               decimal.NewFromInt(1000),
			Version:               1,
		},
		{
			AccountNumber:         "10000002",
			AllowedPaymentSchemes: domain.NewAllowedPaymentSchemes(domain.FasterPayments),
			Status:                domain.Live,
			Balance:               decimal.NewFromInt(250),
			Version:               1,
		},
		{
			AccountNumber:         "10000003",
			AllowedPaymentSchemes: domain.NewAllowedPaymentSchemes(domain.Chaps),
			Status:                domain.Disabled,
			Balance:               decimal.NewFromInt(5000),
			Version:               1,
		},
		{
			AccountNumber:         "10000004",
			AllowedPaymentSchemes: domain.NewAllowedPaymentSchemes(domain.Bacs),
			Status:                domain.InboundPaymentsOnly,
			Balance:               decimal.Zero,
			Version:               1,
		},
	}
}
