package grpc

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/Lexv0lk/payment-service/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestNewJWTTokenInterceptor(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name          string
		token         string
		expectedToken []string
	}

	tests := []testCase{
		{
			name:          "token forwarded",
			token:         "operator-token",
			expectedToken: []string{"operator-token"},
		},
		{
			name:          "no token",
			expectedToken: nil,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			if tt.token != "" {
				c.Set(jwt.TokenContextKey, tt.token)
			}

			var forwarded []string
			invoker := func(ctx context.Context, _ string, _, _ any, _ *grpc.ClientConn, _ ...grpc.CallOption) error {
				md, _ := metadata.FromOutgoingContext(ctx)
				forwarded = md.Get(jwt.TokenMetadataKey)
				return nil
			}

			err := NewJWTTokenInterceptor(c, "/payments.v1.PaymentService/GetAccount", nil, nil, nil, invoker)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedToken, forwarded)
		})
	}
}
