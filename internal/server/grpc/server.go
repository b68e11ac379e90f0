// Package grpc exposes the chat service over gRPC: unary account and
// messaging operations plus the streaming conversations (triage,
// confirmation flows, live feed).
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/gochat/internal/logging"
	pb "github.com/dmitrijs2005/gochat/internal/proto"
	"github.com/dmitrijs2005/gochat/internal/server/services"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedChatServer
	address      string
	users        *services.UserService
	messages     *services.MessageService
	logger       logging.Logger
	jwtSecret    []byte
	pollInterval time.Duration
}

func NewGRPCServer(a string, l logging.Logger, us *services.UserService, ms *services.MessageService, secretKey string, pollInterval time.Duration) (*GRPCServer, error) {
	return &GRPCServer{
		address:      a,
		logger:       l.With("module", "grpc_server"),
		users:        us,
		messages:     ms,
		jwtSecret:    []byte(secretKey),
		pollInterval: pollInterval,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.identityInterceptor),
		grpc.ChainStreamInterceptor(s.streamLoggingInterceptor),
	)

	// registers service
	pb.RegisterChatServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
