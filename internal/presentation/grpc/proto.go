package grpc

// proto.go defines the gRPC server interface for signalgraph.v1.SignalGraphService.
// Messages travel with the JSON codec registered in codec.go; clients select it
// with grpc.CallContentSubtype("json").

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "signalgraph.v1.SignalGraphService"

// SignalGraphServiceServer is the server API for SignalGraphService.
type SignalGraphServiceServer interface {
	ListSignals(context.Context, *ListSignalsRequest) (*ListSignalsResponse, error)
	EvaluateSelection(context.Context, *EvaluateSelectionRequest) (*EvaluateSelectionResponse, error)
	CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error)
	GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error)
	DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error)
	SetCandidate(context.Context, *SetCandidateRequest) (*SessionResponse, error)
	ToggleSignal(context.Context, *ToggleSignalRequest) (*SessionResponse, error)
	LoadProfile(context.Context, *LoadProfileRequest) (*SessionResponse, error)
	ClearSelection(context.Context, *ClearSelectionRequest) (*SessionResponse, error)
	ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error)
	CompareProfiles(context.Context, *CompareProfilesRequest) (*CompareProfilesResponse, error)
	ExportSelection(context.Context, *ExportSelectionRequest) (*ExportSelectionResponse, error)
	mustEmbedUnimplementedSignalGraphServiceServer()
}

// UnimplementedSignalGraphServiceServer provides forward-compatible default implementations.
type UnimplementedSignalGraphServiceServer struct{}

func (UnimplementedSignalGraphServiceServer) ListSignals(context.Context, *ListSignalsRequest) (*ListSignalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListSignals not implemented")
}
func (UnimplementedSignalGraphServiceServer) EvaluateSelection(context.Context, *EvaluateSelectionRequest) (*EvaluateSelectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EvaluateSelection not implemented")
}
func (UnimplementedSignalGraphServiceServer) CreateSession(context.Context, *CreateSessionRequest) (*SessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateSession not implemented")
}
func (UnimplementedSignalGraphServiceServer) GetSession(context.Context, *GetSessionRequest) (*SessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetSession not implemented")
}
func (UnimplementedSignalGraphServiceServer) DeleteSession(context.Context, *DeleteSessionRequest) (*DeleteSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteSession not implemented")
}
func (UnimplementedSignalGraphServiceServer) SetCandidate(context.Context, *SetCandidateRequest) (*SessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetCandidate not implemented")
}
func (UnimplementedSignalGraphServiceServer) ToggleSignal(context.Context, *ToggleSignalRequest) (*SessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ToggleSignal not implemented")
}
func (UnimplementedSignalGraphServiceServer) LoadProfile(context.Context, *LoadProfileRequest) (*SessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method LoadProfile not implemented")
}
func (UnimplementedSignalGraphServiceServer) ClearSelection(context.Context, *ClearSelectionRequest) (*SessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearSelection not implemented")
}
func (UnimplementedSignalGraphServiceServer) ListProfiles(context.Context, *ListProfilesRequest) (*ListProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProfiles not implemented")
}
func (UnimplementedSignalGraphServiceServer) CompareProfiles(context.Context, *CompareProfilesRequest) (*CompareProfilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompareProfiles not implemented")
}
func (UnimplementedSignalGraphServiceServer) ExportSelection(context.Context, *ExportSelectionRequest) (*ExportSelectionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportSelection not implemented")
}
func (UnimplementedSignalGraphServiceServer) mustEmbedUnimplementedSignalGraphServiceServer() {}

// RegisterSignalGraphServiceServer registers the SignalGraphServiceServer with the gRPC server.
func RegisterSignalGraphServiceServer(s grpclib.ServiceRegistrar, srv SignalGraphServiceServer) {
	s.RegisterService(&_SignalGraphService_serviceDesc, srv)
}

var _SignalGraphService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*SignalGraphServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		unary("ListSignals", SignalGraphServiceServer.ListSignals),
		unary("EvaluateSelection", SignalGraphServiceServer.EvaluateSelection),
		unary("CreateSession", SignalGraphServiceServer.CreateSession),
		unary("GetSession", SignalGraphServiceServer.GetSession),
		unary("DeleteSession", SignalGraphServiceServer.DeleteSession),
		unary("SetCandidate", SignalGraphServiceServer.SetCandidate),
		unary("ToggleSignal", SignalGraphServiceServer.ToggleSignal),
		unary("LoadProfile", SignalGraphServiceServer.LoadProfile),
		unary("ClearSelection", SignalGraphServiceServer.ClearSelection),
		unary("ListProfiles", SignalGraphServiceServer.ListProfiles),
		unary("CompareProfiles", SignalGraphServiceServer.CompareProfiles),
		unary("ExportSelection", SignalGraphServiceServer.ExportSelection),
	},
	Streams: []grpclib.StreamDesc{},
}

// unary builds the method descriptor for one RPC, running any server interceptor.
func unary[Req, Resp any](
	method string,
	call func(SignalGraphServiceServer, context.Context, *Req) (*Resp, error),
) grpclib.MethodDesc {
	fullMethod := "/" + serviceName + "/" + method

	return grpclib.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpclib.UnaryServerInterceptor) (any, error) {
			req := new(Req)
			if err := dec(req); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SignalGraphServiceServer), ctx, req)
			}
			info := &grpclib.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			return interceptor(ctx, req, info, func(ctx context.Context, r any) (any, error) {
				return call(srv.(SignalGraphServiceServer), ctx, r.(*Req))
			})
		},
	}
}
