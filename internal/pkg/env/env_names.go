package env

const (
	EnvGrpcPaymentsHost = "GRPC_PAYMENTS_HOST"
	EnvGrpcPaymentsPort = "GRPC_PAYMENTS_PORT"
	EnvHttpPort         = "HTTP_PORT"
	EnvMetricsPort      = "METRICS_PORT"

	EnvDatabaseHost     = "DB_HOST"
	EnvDatabasePort     = "DB_PORT"
	EnvDatabaseUser     = "DB_USER"
	EnvDatabasePassword = "DB_PASSWORD"
	EnvDatabaseName     = "DB_NAME"
	EnvDatabaseSSL      = "DB_SSL"

	EnvJwtSecret = "JWT_SECRET"

	EnvNatsURL       = "NATS_URL"
	EnvPaymentsStore = "PAYMENTS_STORE"
	EnvLogDev        = "LOG_DEV"
)
