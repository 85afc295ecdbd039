package grpc

import (
	"context"

	"github.com/Lexv0lk/payment-service/internal/pkg/jwt"
	"github.com/Lexv0lk/payment-service/internal/pkg/logging"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type AuthInterceptorFabric struct {
	secretKey   string
	tokenParser jwt.TokenParser
	logger      logging.Logger
}

func NewAuthInterceptorFabric(
	secretKey string,
	tokenParser jwt.TokenParser,
	logger logging.Logger,
) *AuthInterceptorFabric {
	return &AuthInterceptorFabric{
		secretKey:   secretKey,
		tokenParser: tokenParser,
		logger:      logger,
	}
}

func (i *AuthInterceptorFabric) GetInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		operatorToken, err := getOperatorToken(ctx)
		if err != nil {
			i.logger.Warn("rejected unauthenticated call", "method", info.FullMethod, "error", err.Error())
			return nil, err
		}

		claims, err := i.tokenParser.ParseToken([]byte(i.secretKey), operatorToken)
		if err != nil {
			i.logger.Warn("failed to parse operator token", "method", info.FullMethod, "error", err.Error())
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		newCtx := context.WithValue(ctx, clientIDContextKey, claims.ClientID)

		return handler(newCtx, req)
	}
}

func getOperatorToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "metadata is empty")
	}

	tokens := md.Get(jwt.TokenMetadataKey)
	if len(tokens) == 0 || tokens[0] == "" {
		return "", status.Error(codes.Unauthenticated, "authorization token is missing")
	}

	return tokens[0], nil
}

func clientIDFromContext(ctx context.Context) string {
	clientID, _ := ctx.Value(clientIDContextKey).(string)
	return clientID
}
