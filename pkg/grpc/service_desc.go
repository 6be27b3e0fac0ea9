package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The alert service is declared by hand over well-known types, so clients
// only need the stock protobuf runtime. Payloads are the JSON shapes served by
// the REST API, carried as google.protobuf.Struct.

const ServiceName = "inventory.alerts.v1.AlertService"

const (
	ListAlertsMethod    = "/" + ServiceName + "/ListAlerts"
	MarkAsReadMethod    = "/" + ServiceName + "/MarkAsRead"
	MarkAllAsReadMethod = "/" + ServiceName + "/MarkAllAsRead"
	SyncAlertsMethod    = "/" + ServiceName + "/SyncAlerts"
	StreamAlertsMethod  = "/" + ServiceName + "/StreamAlerts"
)

type AlertServiceServer interface {
	ListAlerts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MarkAsRead(context.Context, *wrapperspb.UInt64Value) (*structpb.Struct, error)
	MarkAllAsRead(context.Context, *wrapperspb.StringValue) (*wrapperspb.Int64Value, error)
	SyncAlerts(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	StreamAlerts(*emptypb.Empty, AlertService_StreamAlertsServer) error
}

type AlertService_StreamAlertsServer interface {
	Send(*structpb.Struct) error
	grpc.ServerStream
}

type alertServiceStreamAlertsServer struct {
	grpc.ServerStream
}

func (x *alertServiceStreamAlertsServer) Send(m *structpb.Struct) error {
	return x.ServerStream.SendMsg(m)
}

func RegisterAlertServiceServer(s grpc.ServiceRegistrar, srv AlertServiceServer) {
	s.RegisterService(&AlertService_ServiceDesc, srv)
}

func unaryHandler[Req any, Resp any](
	fullMethod string,
	newReq func() *Req,
	call func(AlertServiceServer, context.Context, *Req) (*Resp, error),
) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AlertServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AlertServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

func streamAlertsHandler(srv any, stream grpc.ServerStream) error {
	in := new(emptypb.Empty)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(AlertServiceServer).StreamAlerts(in, &alertServiceStreamAlertsServer{stream})
}

var AlertService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AlertServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListAlerts",
			Handler: unaryHandler(ListAlertsMethod, func() *structpb.Struct { return new(structpb.Struct) },
				func(s AlertServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return s.ListAlerts(ctx, in)
				}),
		},
		{
			MethodName: "MarkAsRead",
			Handler: unaryHandler(MarkAsReadMethod, func() *wrapperspb.UInt64Value { return new(wrapperspb.UInt64Value) },
				func(s AlertServiceServer, ctx context.Context, in *wrapperspb.UInt64Value) (*structpb.Struct, error) {
					return s.MarkAsRead(ctx, in)
				}),
		},
		{
			MethodName: "MarkAllAsRead",
			Handler: unaryHandler(MarkAllAsReadMethod, func() *wrapperspb.StringValue { return new(wrapperspb.StringValue) },
				func(s AlertServiceServer, ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
					return s.MarkAllAsRead(ctx, in)
				}),
		},
		{
			MethodName: "SyncAlerts",
			Handler: unaryHandler(SyncAlertsMethod, func() *emptypb.Empty { return new(emptypb.Empty) },
				func(s AlertServiceServer, ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error) {
					return s.SyncAlerts(ctx, in)
				}),
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamAlerts",
			Handler:       streamAlertsHandler,
			ServerStreams: true,
		},
	},
}

// AlertServiceClient is the client side of AlertService_ServiceDesc.
type AlertServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAlertServiceClient(cc grpc.ClientConnInterface) *AlertServiceClient {
	return &AlertServiceClient{cc: cc}
}

func (c *AlertServiceClient) ListAlerts(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListAlertsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) MarkAsRead(ctx context.Context, in *wrapperspb.UInt64Value, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MarkAsReadMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) MarkAllAsRead(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.Int64Value, error) {
	out := new(wrapperspb.Int64Value)
	if err := c.cc.Invoke(ctx, MarkAllAsReadMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AlertServiceClient) SyncAlerts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, SyncAlertsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

type AlertService_StreamAlertsClient interface {
	Recv() (*structpb.Struct, error)
	grpc.ClientStream
}

type alertServiceStreamAlertsClient struct {
	grpc.ClientStream
}

func (x *alertServiceStreamAlertsClient) Recv() (*structpb.Struct, error) {
	m := new(structpb.Struct)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *AlertServiceClient) StreamAlerts(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (AlertService_StreamAlertsClient, error) {
	stream, err := c.cc.NewStream(ctx, &AlertService_ServiceDesc.Streams[0], StreamAlertsMethod, opts...)
	if err != nil {
		return nil, err
	}
	x := &alertServiceStreamAlertsClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}
