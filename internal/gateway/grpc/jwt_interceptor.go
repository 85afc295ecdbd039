package grpc

import (
	"context"

	"github.com/Lexv0lk/payment-service/internal/pkg/jwt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// NewJWTTokenInterceptor forwards the bearer token stored by the HTTP middleware as gRPC metadata.
func NewJWTTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token, ok := ctx.Value(jwt.TokenContextKey).(string); ok && token != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, jwt.TokenMetadataKey, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}
