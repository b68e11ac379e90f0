// Package client wraps the generated gRPC stubs behind a small API the CLI
// drives: unary calls plus the streaming conversations, with the caller's
// identity attached to every outgoing call.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gochat/internal/common"
	pb "github.com/dmitrijs2005/gochat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// InputFunc reads one line of user input for an interactive conversation.
type InputFunc func() (string, error)

// OutputFunc displays one server turn to the user.
type OutputFunc func(string)

type GRPCClient struct {
	endpointURL  string
	conn         *grpc.ClientConn
	client       pb.ChatClient
	username     string
	sessionToken string
}

func NewChatClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.identityUnaryInterceptor),
		grpc.WithStreamInterceptor(s.identityStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatClient(conn)
	return nil
}

// withIdentity stamps the outgoing metadata with the current username and
// session token so the server can attribute the call.
func (s *GRPCClient) withIdentity(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	if s.username != "" {
		md.Set(common.UsernameHeaderName, s.username)
	}
	if s.sessionToken != "" {
		md.Set(common.SessionTokenHeaderName, s.sessionToken)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) identityUnaryInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	return invoker(s.withIdentity(ctx), method, req, reply, cc, opts...)
}

func (s *GRPCClient) identityStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	return streamer(s.withIdentity(ctx), desc, cc, method, opts...)
}

// Username returns the identity established by the last successful login.
func (s *GRPCClient) Username() string {
	return s.username
}

// Register creates an account and returns the server's verdict message.
// It does not establish a session; call Login for that.
func (s *GRPCClient) Register(ctx context.Context, username, password, confirmPassword string) (string, error) {

	req := &pb.RegisterRequest{Username: username, Password: password, ConfirmPassword: confirmPassword}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", err
	}

	return resp.ServerMessage, nil
}

// Login authenticates and captures the session token from the response
// headers. The boolean reports whether a session was established.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (string, bool, error) {

	req := &pb.LoginRequest{Username: username, Password: password}

	var header metadata.MD
	resp, err := s.client.Login(ctx, req, grpc.Header(&header))
	if err != nil {
		return "", false, err
	}

	tokens := header.Get(common.SessionTokenHeaderName)
	if len(tokens) == 0 {
		return resp.ServerMessage, false, nil
	}

	s.username = username
	s.sessionToken = tokens[0]
	return resp.ServerMessage, true, nil
}

// Logoff ends the session on the server and forgets the local identity.
func (s *GRPCClient) Logoff(ctx context.Context) (string, error) {

	req := &pb.LogoffRequest{Username: s.username}

	resp, err := s.client.Logoff(ctx, req)
	if err != nil {
		return "", err
	}

	s.username = ""
	s.sessionToken = ""
	return resp.ServerMessage, nil
}

// SendMessage submits a raw "@recipient body" line.
func (s *GRPCClient) SendMessage(ctx context.Context, text string) (string, bool, error) {

	req := &pb.GeneralMessage{Command: "sendmessage", Message: text}

	resp, err := s.client.SendMessage(ctx, req)
	if err != nil {
		return "", false, err
	}

	return resp.ServerMessage, resp.Success, nil
}

// SearchUsers returns the other users' names plus the server's message.
func (s *GRPCClient) SearchUsers(ctx context.Context) (string, []string, error) {

	req := &pb.SearchRequest{Username: s.username}

	resp, err := s.client.SearchUsers(ctx, req)
	if err != nil {
		return "", nil, err
	}

	return resp.ServerMessage, resp.Usernames, nil
}

// triageAwaitsInput reports whether a triage server turn expects an answer.
// These are the conversation's prompt turns; everything else is either a
// delivery or a terminal message.
func triageAwaitsInput(msg string) bool {
	switch {
	case strings.Contains(msg, "Type '1' to read them"):
	case strings.Contains(msg, "Type the sender's name"):
	case msg == "Invalid choice. Please type '1' or '2'.":
	case msg == "Please provide a valid sender name.":
	default:
		return false
	}
	return true
}

// CheckMessages drives the unread triage conversation: server turns go to
// output, and whenever the server awaits an answer the next line is pulled
// from input. Returns once the server closes the conversation.
func (s *GRPCClient) CheckMessages(ctx context.Context, input InputFunc, output OutputFunc) error {

	stream, err := s.client.CheckMessages(ctx)
	if err != nil {
		return err
	}

	if err := stream.Send(&pb.CheckMessagesRequest{Username: s.username}); err != nil {
		return err
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		output(resp.ServerMessage)

		if !triageAwaitsInput(resp.ServerMessage) {
			continue
		}

		line, err := input()
		if err != nil {
			_ = stream.CloseSend()
			return err
		}

		req := &pb.CheckMessagesRequest{Username: s.username}
		if line == "1" || line == "2" {
			req.Choice = line
		} else {
			req.Sender = line
		}
		if err := stream.Send(req); err != nil {
			return err
		}
	}
}

// DeleteLastMessage runs the confirmation-gated deletion of the caller's
// last unread sent message and returns the final server message.
func (s *GRPCClient) DeleteLastMessage(ctx context.Context, input InputFunc, output OutputFunc) (string, error) {

	stream, err := s.client.DeleteLastMessage(ctx)
	if err != nil {
		return "", err
	}

	// the server opens with the confirmation prompt
	prompt, err := stream.Recv()
	if err != nil {
		return "", err
	}
	output(prompt.ServerMessage)

	answer, err := input()
	if err != nil {
		_ = stream.CloseSend()
		return "", err
	}

	req := &pb.DeleteRequest{Username: s.username, Confirmation: strings.ToLower(answer)}
	if err := stream.Send(req); err != nil {
		return "", err
	}

	resp, err := stream.Recv()
	if err != nil {
		return "", err
	}
	output(resp.ServerMessage)

	_ = stream.CloseSend()
	return resp.ServerMessage, nil
}

// DeactivateAccount runs the confirmation-gated account removal. The boolean
// reports whether the account was actually removed, so the caller can drop
// the local session.
func (s *GRPCClient) DeactivateAccount(ctx context.Context, input InputFunc, output OutputFunc) (bool, error) {

	stream, err := s.client.DeactivateAccount(ctx)
	if err != nil {
		return false, err
	}

	prompt, err := stream.Recv()
	if err != nil {
		return false, err
	}
	output(prompt.ServerMessage)

	answer, err := input()
	if err != nil {
		_ = stream.CloseSend()
		return false, err
	}

	req := &pb.DeactivateRequest{Username: s.username, Confirmation: strings.ToLower(answer)}
	if err := stream.Send(req); err != nil {
		return false, err
	}

	resp, err := stream.Recv()
	if err != nil {
		return false, err
	}
	output(resp.ServerMessage)

	_ = stream.CloseSend()

	if strings.Contains(resp.ServerMessage, "removed") {
		s.username = ""
		s.sessionToken = ""
		return true, nil
	}
	return false, nil
}

// ReceiveMessages streams the live feed until ctx is canceled, rendering
// each message as "[timestamp] sender: body".
func (s *GRPCClient) ReceiveMessages(ctx context.Context, output OutputFunc) error {

	stream, err := s.client.ReceiveMessages(ctx, &pb.ReceiveRequest{Username: s.username})
	if err != nil {
		return err
	}

	for {
		resp, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return nil
			}
			return err
		}
		output(fmt.Sprintf("[%s] %s: %s", resp.Timestamp, resp.Sender, resp.Message))
	}
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}
