package paymentsv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ServiceName = "payments.v1.PaymentService"

	MakePaymentFullMethod = "/" + ServiceName + "/MakePayment"
	GetAccountFullMethod  = "/" + ServiceName + "/GetAccount"
)

//go:generate mockgen -destination=../../../gen/mocks/grpc/mock_payments_client.go -package=mocks . PaymentServiceClient

type PaymentServiceServer interface {
	MakePayment(context.Context, *MakePaymentRequest) (*MakePaymentResponse, error)
	GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error)
}

type UnimplementedPaymentServiceServer struct{}

func (UnimplementedPaymentServiceServer) MakePayment(context.Context, *MakePaymentRequest) (*MakePaymentResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method MakePayment not implemented")
}

func (UnimplementedPaymentServiceServer) GetAccount(context.Context, *GetAccountRequest) (*GetAccountResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAccount not implemented")
}

var PaymentServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PaymentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "MakePayment",
			Handler:    makePaymentHandler,
		},
		{
			MethodName: "GetAccount",
			Handler:    getAccountHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/payments/v1/payments.proto",
}

func RegisterPaymentServiceServer(s grpc.ServiceRegistrar, srv PaymentServiceServer) {
	s.RegisterService(&PaymentServiceDesc, srv)
}

func makePaymentHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(MakePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).MakePayment(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MakePaymentFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaymentServiceServer).MakePayment(ctx, req.(*MakePaymentRequest))
	}

	return interceptor(ctx, in, info, handler)
}

func getAccountHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaymentServiceServer).GetAccount(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetAccountFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(PaymentServiceServer).GetAccount(ctx, req.(*GetAccountRequest))
	}

	return interceptor(ctx, in, info, handler)
}

type PaymentServiceClient interface {
	MakePayment(ctx context.Context, in *MakePaymentRequest, opts ...grpc.CallOption) (*MakePaymentResponse, error)
	GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error)
}

type paymentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPaymentServiceClient(cc grpc.ClientConnInterface) PaymentServiceClient {
	return &paymentServiceClient{cc: cc}
}

func (c *paymentServiceClient) MakePayment(ctx context.Context, in *MakePaymentRequest, opts ...grpc.CallOption) (*MakePaymentResponse, error) {
	out := new(MakePaymentResponse)
	if err := c.cc.Invoke(ctx, MakePaymentFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *paymentServiceClient) GetAccount(ctx context.Context, in *GetAccountRequest, opts ...grpc.CallOption) (*GetAccountResponse, error) {
	out := new(GetAccountResponse)
	if err := c.cc.Invoke(ctx, GetAccountFullMethod, in, out, withCodec(opts)...); err != nil {
		return nil, err
	}

	return out, nil
}

func withCodec(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}
