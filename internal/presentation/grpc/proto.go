package grpc

// proto.go defines the gRPC server interface derived from
// clarifier/intent/v1/intent.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// IntentServiceServer is the server API for IntentService.
type IntentServiceServer interface {
	ProcessInstruction(context.Context, *ProcessInstructionRequest) (*ProcessInstructionResponse, error)
	mustEmbedUnimplementedIntentServiceServer()
}

// UnimplementedIntentServiceServer provides forward-compatible default implementations.
type UnimplementedIntentServiceServer struct{}

func (UnimplementedIntentServiceServer) ProcessInstruction(context.Context, *ProcessInstructionRequest) (*ProcessInstructionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ProcessInstruction not implemented")
}
func (UnimplementedIntentServiceServer) mustEmbedUnimplementedIntentServiceServer() {}

// RegisterIntentServiceServer registers the IntentServiceServer with the gRPC server.
func RegisterIntentServiceServer(s *grpclib.Server, srv IntentServiceServer) {
	s.RegisterService(&_IntentService_serviceDesc, srv)
}

var _IntentService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "clarifier.intent.v1.IntentService",
	HandlerType: (*IntentServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ProcessInstruction", Handler: _IntentService_ProcessInstruction_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _IntentService_ProcessInstruction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, _ grpclib.UnaryServerInterceptor) (interface{}, error) {
	req := new(ProcessInstructionRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	return srv.(IntentServiceServer).ProcessInstruction(ctx, req)
}
