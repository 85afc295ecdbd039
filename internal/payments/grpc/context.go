package grpc

var clientIDContextKey = contextKey{name: "client_id"}

type contextKey struct {
	name string
}
