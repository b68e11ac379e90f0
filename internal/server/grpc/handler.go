package grpc

import (
	"context"

	"github.com/dmitrijs2005/gochat/internal/common"
	pb "github.com/dmitrijs2005/gochat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.Response, error) {

	s.logger.Info(ctx, "Registration request")

	out, err := s.users.Register(ctx, req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return &pb.Response{Command: "1", ServerMessage: "Server error during registration."}, nil
	}

	if out.OK {
		s.logger.Info(ctx, "Registered", "username", req.Username)
	}
	return &pb.Response{Command: "1", ServerMessage: out.Message}, nil

}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.Response, error) {

	result, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	if result.OK {
		// hand the freshly minted session token back in the response headers
		if err := grpc.SetHeader(ctx, metadata.Pairs(common.SessionTokenHeaderName, result.SessionToken)); err != nil {
			s.logger.Error(ctx, err.Error())
			return nil, status.Error(codes.Internal, "internal error")
		}
		s.logger.Info(ctx, "Logged in", "username", req.Username)
	}

	return &pb.Response{Command: "2", ServerMessage: result.Message}, nil

}

func (s *GRPCServer) SendMessage(ctx context.Context, req *pb.GeneralMessage) (*pb.SendMessageResponse, error) {

	sender := usernameFromContext(ctx)

	out, err := s.messages.Send(ctx, sender, req.Message)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return &pb.SendMessageResponse{Success: false, ServerMessage: "Error storing message."}, nil
	}

	return &pb.SendMessageResponse{Success: out.OK, ServerMessage: out.Message}, nil

}

func (s *GRPCServer) Logoff(ctx context.Context, req *pb.LogoffRequest) (*pb.Response, error) {

	out, err := s.users.Logoff(ctx, req.Username)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return &pb.Response{Command: "logoff", ServerMessage: "Logoff error."}, nil
	}

	return &pb.Response{Command: "logoff", ServerMessage: out.Message}, nil

}

func (s *GRPCServer) SearchUsers(ctx context.Context, req *pb.SearchRequest) (*pb.SearchResponse, error) {

	usernames, err := s.users.SearchUsers(ctx, req.Username)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return &pb.SearchResponse{Success: false, Usernames: []string{}, ServerMessage: "Error searching users."}, nil
	}

	return &pb.SearchResponse{Success: true, Usernames: usernames, ServerMessage: "User list retrieved."}, nil

}
