package paymentsv1

import (
	"os"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentServiceDesc_MatchesProto(t *testing.T) {
	t.Parallel()

	schema, err := os.ReadFile("payments.proto")
	require.NoError(t, err)

	pkg := regexp.MustCompile(`(?m)^package\s+([\w.]+);`).FindSubmatch(schema)
	require.NotNil(t, pkg)
	service := regexp.MustCompile(`(?m)^service\s+(\w+)\s*\{`).FindSubmatch(schema)
	require.NotNil(t, service)
	assert.Equal(t, ServiceName, string(pkg[1])+"."+string(service[1]))

	var rpcs []string
	for _, match := range regexp.MustCompile(`(?m)^\s*rpc\s+(\w+)\(`).FindAllSubmatch(schema, -1) {
		rpcs = append(rpcs, string(match[1]))
	}

	var methods []string
	for _, method := range PaymentServiceDesc.Methods {
		methods = append(methods, method.MethodName)
	}
	assert.Equal(t, rpcs, methods)
	assert.Equal(t, "api/payments/v1/payments.proto", PaymentServiceDesc.Metadata)
}
