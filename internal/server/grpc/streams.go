package grpc

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	pb "github.com/dmitrijs2005/gochat/internal/proto"
	"github.com/dmitrijs2005/gochat/internal/server/conversation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// internalErrorText is the terminal turn a streaming conversation sends when
// the store fails mid-flow. The client always receives a well-formed final
// message instead of a transport-level error.
const internalErrorText = "Error: internal server error"

// streamDone reports whether the stream ended because the client closed or
// canceled it, which is clean termination rather than a failure.
func streamDone(ctx context.Context, err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	if status.Code(err) == codes.Canceled {
		return true
	}
	return ctx.Err() != nil
}

// CheckMessages drives the unread triage conversation: the client supplies
// the username, then a read/skip choice, then a sender; the server streams
// the unread messages in batches, marking each batch read as it goes.
func (s *GRPCServer) CheckMessages(stream pb.Chat_CheckMessagesServer) error {

	ctx := stream.Context()
	triage := conversation.NewTriage(s.messages)

	for !triage.Done() {
		req, err := stream.Recv()
		if err != nil {
			if streamDone(ctx, err) {
				return nil
			}
			return err
		}

		turn := conversation.Turn{Username: req.Username, Choice: req.Choice, Sender: req.Sender}

		replies, nextErr := triage.Next(ctx, turn)
		for _, r := range replies {
			resp := &pb.CheckMessagesResponse{
				Command:       "checkmessages",
				ServerMessage: r.Text,
				Sender:        r.Sender,
				MessageBody:   r.Body,
			}
			if err := stream.Send(resp); err != nil {
				return err
			}
		}

		if nextErr != nil {
			s.logger.Error(ctx, nextErr.Error())
			return stream.Send(&pb.CheckMessagesResponse{
				Command:       "checkmessages",
				ServerMessage: internalErrorText,
			})
		}
	}

	return nil
}

// DeleteLastMessage prompts for confirmation and, on "yes", removes the
// caller's most recent unread sent message.
func (s *GRPCServer) DeleteLastMessage(stream pb.Chat_DeleteLastMessageServer) error {

	ctx := stream.Context()
	flow := conversation.NewDeleteLastConfirmation(s.messages)

	if err := stream.Send(&pb.Response{Command: "delete", ServerMessage: flow.Prompt().Text}); err != nil {
		return err
	}

	req, err := stream.Recv()
	if err != nil {
		if streamDone(ctx, err) {
			return nil
		}
		return err
	}

	reply, err := flow.Resolve(ctx, req.Username, req.Confirmation)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return stream.Send(&pb.Response{Command: "delete", ServerMessage: internalErrorText})
	}

	return stream.Send(&pb.Response{Command: "delete", ServerMessage: reply.Text})
}

// DeactivateAccount prompts for confirmation and, on "yes", removes the
// account together with every message it sent.
func (s *GRPCServer) DeactivateAccount(stream pb.Chat_DeactivateAccountServer) error {

	ctx := stream.Context()
	flow := conversation.NewDeactivateConfirmation(s.users)

	if err := stream.Send(&pb.Response{Command: "deactivate", ServerMessage: flow.Prompt().Text}); err != nil {
		return err
	}

	req, err := stream.Recv()
	if err != nil {
		if streamDone(ctx, err) {
			return nil
		}
		return err
	}

	reply, err := flow.Resolve(ctx, req.Username, req.Confirmation)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return stream.Send(&pb.Response{Command: "deactivate", ServerMessage: internalErrorText})
	}

	return stream.Send(&pb.Response{Command: "deactivate", ServerMessage: reply.Text})
}

// ReceiveMessages streams every message addressed to the caller that arrives
// after the call starts, until the client cancels. The store is polled on a
// fixed interval; the cursor is the last streamed message id.
func (s *GRPCServer) ReceiveMessages(req *pb.ReceiveRequest, stream pb.Chat_ReceiveMessagesServer) error {

	ctx := stream.Context()

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return status.Error(codes.InvalidArgument, "no username provided")
	}

	cursor, err := s.messages.LatestID(ctx, username)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		msgs, err := s.messages.ReceivedAfter(ctx, username, cursor)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Error(ctx, err.Error())
			return status.Error(codes.Internal, "internal error")
		}

		for _, m := range msgs {
			resp := &pb.ReceiveResponse{
				Timestamp: m.CreatedAt.Format(conversation.TimestampLayout),
				Sender:    m.Sender,
				Message:   m.Body,
			}
			if err := stream.Send(resp); err != nil {
				if streamDone(ctx, err) {
					return nil
				}
				return err
			}
			cursor = m.ID
		}
	}
}
