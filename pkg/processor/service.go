package processor

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// EventProcessorClient is the client API for the EventProcessor service.
type EventProcessorClient interface {
	PushEvent(ctx context.Context, in *EventInput, opts ...grpc.CallOption) (*EventOutput, error)
	PushNftEvent(ctx context.Context, in *NftEventInput, opts ...grpc.CallOption) (*EventOutput, error)
	PushSeriesEvent(ctx context.Context, in *SeriesEventInput, opts ...grpc.CallOption) (*EventOutput, error)
}

type eventProcessorClient struct {
	cc grpc.ClientConnInterface
}

func NewEventProcessorClient(cc grpc.ClientConnInterface) EventProcessorClient {
	return &eventProcessorClient{cc}
}

func (c *eventProcessorClient) PushEvent(ctx context.Context, in *EventInput, opts ...grpc.CallOption) (*EventOutput, error) {
	out := new(EventOutput)
	if err := c.cc.Invoke(ctx, "/EventProcessor/PushEvent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventProcessorClient) PushNftEvent(ctx context.Context, in *NftEventInput, opts ...grpc.CallOption) (*EventOutput, error) {
	out := new(EventOutput)
	if err := c.cc.Invoke(ctx, "/EventProcessor/PushNftEvent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *eventProcessorClient) PushSeriesEvent(ctx context.Context, in *SeriesEventInput, opts ...grpc.CallOption) (*EventOutput, error) {
	out := new(EventOutput)
	if err := c.cc.Invoke(ctx, "/EventProcessor/PushSeriesEvent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// EventProcessorServer is the server API for the EventProcessor service.
// Implementations should embed UnimplementedEventProcessorServer.
type EventProcessorServer interface {
	PushEvent(context.Context, *EventInput) (*EventOutput, error)
	PushNftEvent(context.Context, *NftEventInput) (*EventOutput, error)
	PushSeriesEvent(context.Context, *SeriesEventInput) (*EventOutput, error)
}

// UnimplementedEventProcessorServer returns Unimplemented for every method.
type UnimplementedEventProcessorServer struct{}

func (UnimplementedEventProcessorServer) PushEvent(context.Context, *EventInput) (*EventOutput, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PushEvent not implemented")
}

func (UnimplementedEventProcessorServer) PushNftEvent(context.Context, *NftEventInput) (*EventOutput, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PushNftEvent not implemented")
}

func (UnimplementedEventProcessorServer) PushSeriesEvent(context.Context, *SeriesEventInput) (*EventOutput, error) {
	return nil, status.Errorf(codes.Unimplemented, "method PushSeriesEvent not implemented")
}

func RegisterEventProcessorServer(s grpc.ServiceRegistrar, srv EventProcessorServer) {
	s.RegisterService(&EventProcessor_ServiceDesc, srv)
}

func _EventProcessor_PushEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EventInput)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventProcessorServer).PushEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/EventProcessor/PushEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventProcessorServer).PushEvent(ctx, req.(*EventInput))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventProcessor_PushNftEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NftEventInput)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventProcessorServer).PushNftEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/EventProcessor/PushNftEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventProcessorServer).PushNftEvent(ctx, req.(*NftEventInput))
	}
	return interceptor(ctx, in, info, handler)
}

func _EventProcessor_PushSeriesEvent_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SeriesEventInput)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EventProcessorServer).PushSeriesEvent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/EventProcessor/PushSeriesEvent",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EventProcessorServer).PushSeriesEvent(ctx, req.(*SeriesEventInput))
	}
	return interceptor(ctx, in, info, handler)
}

// EventProcessor_ServiceDesc is the grpc.ServiceDesc for the EventProcessor
// service. The service is declared without a proto package, so method paths
// are rooted at /EventProcessor.
var EventProcessor_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "EventProcessor",
	HandlerType: (*EventProcessorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "PushEvent",
			Handler:    _EventProcessor_PushEvent_Handler,
		},
		{
			MethodName: "PushNftEvent",
			Handler:    _EventProcessor_PushNftEvent_Handler,
		},
		{
			MethodName: "PushSeriesEvent",
			Handler:    _EventProcessor_PushSeriesEvent_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "event-processor.proto",
}
