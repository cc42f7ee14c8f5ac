// Copyright (C) 2019-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package choreography

import (
	"context"

	"google.golang.org/grpc"

	"github.com/luxfi/moose/proto/moosepb"
	"github.com/luxfi/moose/wire"
)

// Service adapts Server to the moosepb request/response message shapes,
// the layer a grpc.ServiceDesc's handlers call into. It is registered
// onto a *grpc.Server with RegisterService below, the same
// networking/grpcutils-style wiring the rest of this tree's transport
// layer follows.
type Service struct {
	server *Server
}

func NewService(server *Server) *Service {
	return &Service{server: server}
}

func (s *Service) LaunchComputation(ctx context.Context, req *moosepb.LaunchComputationRequest) (*moosepb.LaunchComputationResponse, error) {
	comp, err := wire.DecodeComputation(req.ComputationBytes)
	if err != nil {
		return nil, err
	}
	arguments, err := wire.DecodeValues(req.ArgumentsBytes)
	if err != nil {
		return nil, err
	}
	if err := s.server.LaunchComputation(ctx, req.SessionID, comp, req.RoleAssignment, arguments); err != nil {
		return nil, err
	}
	return &moosepb.LaunchComputationResponse{Accepted: true}, nil
}

func (s *Service) RetrieveResults(ctx context.Context, req *moosepb.RetrieveResultsRequest) (*moosepb.RetrieveResultsResponse, error) {
	outputs, ready, err := s.server.RetrieveResults(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if !ready {
		return &moosepb.RetrieveResultsResponse{Ready: false}, nil
	}
	data, err := wire.EncodeValues(outputs)
	if err != nil {
		return nil, err
	}
	return &moosepb.RetrieveResultsResponse{Ready: true, OutputsBytes: data}, nil
}

func (s *Service) AbortComputation(ctx context.Context, req *moosepb.AbortComputationRequest) (*moosepb.AbortComputationResponse, error) {
	if err := s.server.AbortComputation(ctx, req.SessionID); err != nil {
		return nil, err
	}
	return &moosepb.AbortComputationResponse{Aborted: true}, nil
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: "moose.Choreography",
	HandlerType: (*choreographyHandler)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "LaunchComputation", Handler: launchComputationHandler},
		{MethodName: "RetrieveResults", Handler: retrieveResultsHandler},
		{MethodName: "AbortComputation", Handler: abortComputationHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "moose/choreography.proto",
}

// choreographyHandler is the interface grpc.ServiceDesc's HandlerType
// points at; RegisterService below registers a *Service satisfying it.
type choreographyHandler interface {
	LaunchComputation(context.Context, *moosepb.LaunchComputationRequest) (*moosepb.LaunchComputationResponse, error)
	RetrieveResults(context.Context, *moosepb.RetrieveResultsRequest) (*moosepb.RetrieveResultsResponse, error)
	AbortComputation(context.Context, *moosepb.AbortComputationRequest) (*moosepb.AbortComputationResponse, error)
}

func launchComputationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(moosepb.LaunchComputationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(choreographyHandler).LaunchComputation(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/moose.Choreography/LaunchComputation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(choreographyHandler).LaunchComputation(ctx, req.(*moosepb.LaunchComputationRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func retrieveResultsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(moosepb.RetrieveResultsRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(choreographyHandler).RetrieveResults(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/moose.Choreography/RetrieveResults"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(choreographyHandler).RetrieveResults(ctx, req.(*moosepb.RetrieveResultsRequest))
	}
	return interceptor(ctx, req, info, handler)
}

func abortComputationHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	req := new(moosepb.AbortComputationRequest)
	if err := dec(req); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(choreographyHandler).AbortComputation(ctx, req)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/moose.Choreography/AbortComputation"}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(choreographyHandler).AbortComputation(ctx, req.(*moosepb.AbortComputationRequest))
	}
	return interceptor(ctx, req, info, handler)
}

// RegisterService registers svc onto a gRPC server so LaunchComputation,
// RetrieveResults, and AbortComputation become reachable RPCs.
func RegisterService(s *grpc.Server, svc *Service) {
	s.RegisterService(&serviceDesc, svc)
}
