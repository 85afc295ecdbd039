package bootstrap

type GatewayConfig struct {
	GrpcPaymentsHost string
	GrpcPaymentsPort string
	HttpPort         string
}
