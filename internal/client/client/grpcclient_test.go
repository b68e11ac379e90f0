package client

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/gochat/internal/common"
	pb "github.com/dmitrijs2005/gochat/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type fakeBidiStream[Req any, Res any] struct {
	grpc.ClientStream
	sent   []*Req
	recvQ  []*Res
	closed bool
}

func (f *fakeBidiStream[Req, Res]) Send(m *Req) error {
	f.sent = append(f.sent, m)
	return nil
}

func (f *fakeBidiStream[Req, Res]) Recv() (*Res, error) {
	if len(f.recvQ) == 0 {
		return nil, io.EOF
	}
	m := f.recvQ[0]
	f.recvQ = f.recvQ[1:]
	return m, nil
}

func (f *fakeBidiStream[Req, Res]) CloseSend() error {
	f.closed = true
	return nil
}

type fakeServerStream[Res any] struct {
	grpc.ClientStream
	recvQ []*Res
}

func (f *fakeServerStream[Res]) Recv() (*Res, error) {
	if len(f.recvQ) == 0 {
		return nil, io.EOF
	}
	m := f.recvQ[0]
	f.recvQ = f.recvQ[1:]
	return m, nil
}

type fakePB struct {
	registerResp *pb.Response
	loginResp    *pb.Response
	loginHeader  metadata.MD
	lastLogin    *pb.LoginRequest
	logoffResp   *pb.Response
	lastLogoff   *pb.LogoffRequest
	sendResp     *pb.SendMessageResponse
	lastSend     *pb.GeneralMessage
	searchResp   *pb.SearchResponse

	checkStream      *fakeBidiStream[pb.CheckMessagesRequest, pb.CheckMessagesResponse]
	deleteStream     *fakeBidiStream[pb.DeleteRequest, pb.Response]
	deactivateStream *fakeBidiStream[pb.DeactivateRequest, pb.Response]
	receiveStream    *fakeServerStream[pb.ReceiveResponse]
}

func (f *fakePB) Register(ctx context.Context, in *pb.RegisterRequest, opts ...grpc.CallOption) (*pb.Response, error) {
	return f.registerResp, nil
}

func (f *fakePB) Login(ctx context.Context, in *pb.LoginRequest, opts ...grpc.CallOption) (*pb.Response, error) {
	f.lastLogin = in
	for _, opt := range opts {
		if h, ok := opt.(grpc.HeaderCallOption); ok {
			*h.HeaderAddr = f.loginHeader
		}
	}
	return f.loginResp, nil
}

func (f *fakePB) SendMessage(ctx context.Context, in *pb.GeneralMessage, opts ...grpc.CallOption) (*pb.SendMessageResponse, error) {
	f.lastSend = in
	return f.sendResp, nil
}

func (f *fakePB) CheckMessages(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[pb.CheckMessagesRequest, pb.CheckMessagesResponse], error) {
	return f.checkStream, nil
}

func (f *fakePB) Logoff(ctx context.Context, in *pb.LogoffRequest, opts ...grpc.CallOption) (*pb.Response, error) {
	f.lastLogoff = in
	return f.logoffResp, nil
}

func (f *fakePB) SearchUsers(ctx context.Context, in *pb.SearchRequest, opts ...grpc.CallOption) (*pb.SearchResponse, error) {
	return f.searchResp, nil
}

func (f *fakePB) DeleteLastMessage(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[pb.DeleteRequest, pb.Response], error) {
	return f.deleteStream, nil
}

func (f *fakePB) DeactivateAccount(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[pb.DeactivateRequest, pb.Response], error) {
	return f.deactivateStream, nil
}

func (f *fakePB) ReceiveMessages(ctx context.Context, in *pb.ReceiveRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[pb.ReceiveResponse], error) {
	return f.receiveStream, nil
}

func scriptedInput(lines ...string) InputFunc {
	return func() (string, error) {
		if len(lines) == 0 {
			return "", io.EOF
		}
		l := lines[0]
		lines = lines[1:]
		return l, nil
	}
}

func collectOutput(dst *[]string) OutputFunc {
	return func(msg string) { *dst = append(*dst, msg) }
}

func TestWithIdentity(t *testing.T) {
	c := &GRPCClient{username: "alice", sessionToken: "tok123"}

	ctx := c.withIdentity(context.Background())

	md, ok := metadata.FromOutgoingContext(ctx)
	if !ok {
		t.Fatal("expected outgoing metadata")
	}
	if got := md.Get(common.UsernameHeaderName); len(got) != 1 || got[0] != "alice" {
		t.Errorf("username metadata = %v, want [alice]", got)
	}
	if got := md.Get(common.SessionTokenHeaderName); len(got) != 1 || got[0] != "tok123" {
		t.Errorf("session token metadata = %v, want [tok123]", got)
	}
}

func TestWithIdentity_NoSession(t *testing.T) {
	c := &GRPCClient{}

	ctx := c.withIdentity(context.Background())

	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.UsernameHeaderName)) != 0 {
		t.Error("expected no username metadata before login")
	}
	if len(md.Get(common.SessionTokenHeaderName)) != 0 {
		t.Error("expected no session token metadata before login")
	}
}

func TestLogin_EstablishesSession(t *testing.T) {
	fake := &fakePB{
		loginResp:   &pb.Response{ServerMessage: "Welcome, alice!"},
		loginHeader: metadata.Pairs(common.SessionTokenHeaderName, "tok123"),
	}
	c := &GRPCClient{client: fake}

	msg, ok, err := c.Login(context.Background(), "alice", "Password1!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected session to be established")
	}
	if msg != "Welcome, alice!" {
		t.Errorf("message = %q", msg)
	}
	if c.Username() != "alice" || c.sessionToken != "tok123" {
		t.Errorf("identity = (%q, %q), want (alice, tok123)", c.username, c.sessionToken)
	}
	if fake.lastLogin.Username != "alice" || fake.lastLogin.Password != "Password1!" {
		t.Errorf("login request = %+v", fake.lastLogin)
	}
}

func TestLogin_NoTokenMeansRejected(t *testing.T) {
	fake := &fakePB{loginResp: &pb.Response{ServerMessage: "Incorrect password."}}
	c := &GRPCClient{client: fake}

	msg, ok, err := c.Login(context.Background(), "alice", "wrong")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no session")
	}
	if msg != "Incorrect password." {
		t.Errorf("message = %q", msg)
	}
	if c.username != "" || c.sessionToken != "" {
		t.Error("identity must stay empty after a rejected login")
	}
}

func TestLogoff_ForgetsIdentity(t *testing.T) {
	fake := &fakePB{logoffResp: &pb.Response{ServerMessage: "alice has been logged off."}}
	c := &GRPCClient{client: fake, username: "alice", sessionToken: "tok"}

	msg, err := c.Logoff(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "alice has been logged off." {
		t.Errorf("message = %q", msg)
	}
	if fake.lastLogoff.Username != "alice" {
		t.Errorf("logoff request username = %q", fake.lastLogoff.Username)
	}
	if c.username != "" || c.sessionToken != "" {
		t.Error("identity must be cleared after logoff")
	}
}

func TestSendMessage(t *testing.T) {
	fake := &fakePB{sendResp: &pb.SendMessageResponse{ServerMessage: "", Success: true}}
	c := &GRPCClient{client: fake, username: "alice"}

	_, ok, err := c.SendMessage(context.Background(), "@bob hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected success")
	}
	if fake.lastSend.Command != "sendmessage" || fake.lastSend.Message != "@bob hello" {
		t.Errorf("request = %+v", fake.lastSend)
	}
}

func TestSearchUsers(t *testing.T) {
	fake := &fakePB{searchResp: &pb.SearchResponse{
		ServerMessage: "User list retrieved.",
		Usernames:     []string{"bob", "carol"},
	}}
	c := &GRPCClient{client: fake, username: "alice"}

	msg, users, err := c.SearchUsers(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg != "User list retrieved." {
		t.Errorf("message = %q", msg)
	}
	if len(users) != 2 || users[0] != "bob" || users[1] != "carol" {
		t.Errorf("users = %v", users)
	}
}

func TestTriageAwaitsInput(t *testing.T) {
	tests := []struct {
		msg  string
		want bool
	}{
		{"You have 3 unread messages.\nType '1' to read them, or '2' to skip.", true},
		{"Unread from: bob(2)\nType the sender's name to read those messages.", true},
		{"Invalid choice. Please type '1' or '2'.", true},
		{"Please provide a valid sender name.", true},
		{"You have 0 unread messages.", false},
		{"2026-01-02 10:00:00 bob: hi", false},
		{"(This batch marked as read.)", false},
		{"Done reading messages from this sender.", false},
	}

	for _, tc := range tests {
		if got := triageAwaitsInput(tc.msg); got != tc.want {
			t.Errorf("triageAwaitsInput(%q) = %v, want %v", tc.msg, got, tc.want)
		}
	}
}

func TestCheckMessages_DrivesConversation(t *testing.T) {
	stream := &fakeBidiStream[pb.CheckMessagesRequest, pb.CheckMessagesResponse]{
		recvQ: []*pb.CheckMessagesResponse{
			{ServerMessage: "You have 1 unread messages.\nType '1' to read them, or '2' to skip."},
			{ServerMessage: "Unread from: bob(1)\nType the sender's name to read those messages."},
			{ServerMessage: "2026-01-02 10:00:00 bob: hi"},
			{ServerMessage: "(This batch marked as read.)"},
			{ServerMessage: "Done reading messages from this sender."},
		},
	}
	fake := &fakePB{checkStream: stream}
	c := &GRPCClient{client: fake, username: "alice"}

	var out []string
	err := c.CheckMessages(context.Background(), scriptedInput("1", "bob"), collectOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 5 {
		t.Fatalf("got %d output turns, want 5: %v", len(out), out)
	}
	if len(stream.sent) != 3 {
		t.Fatalf("got %d sent requests, want 3", len(stream.sent))
	}
	if stream.sent[0].Username != "alice" {
		t.Errorf("opening request username = %q", stream.sent[0].Username)
	}
	if stream.sent[1].Choice != "1" {
		t.Errorf("choice = %q, want 1", stream.sent[1].Choice)
	}
	if stream.sent[2].Sender != "bob" {
		t.Errorf("sender = %q, want bob", stream.sent[2].Sender)
	}
}

func TestCheckMessages_NoUnread(t *testing.T) {
	stream := &fakeBidiStream[pb.CheckMessagesRequest, pb.CheckMessagesResponse]{
		recvQ: []*pb.CheckMessagesResponse{
			{ServerMessage: "You have 0 unread messages."},
		},
	}
	fake := &fakePB{checkStream: stream}
	c := &GRPCClient{client: fake, username: "alice"}

	var out []string
	err := c.CheckMessages(context.Background(), scriptedInput(), collectOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out) != 1 || out[0] != "You have 0 unread messages." {
		t.Errorf("output = %v", out)
	}
	if len(stream.sent) != 1 {
		t.Errorf("got %d sent requests, want only the opening one", len(stream.sent))
	}
}

func TestDeleteLastMessage_Confirmed(t *testing.T) {
	stream := &fakeBidiStream[pb.DeleteRequest, pb.Response]{
		recvQ: []*pb.Response{
			{ServerMessage: "Are you sure you want to delete your last unread message? (yes/no)"},
			{ServerMessage: "Your last unread message was deleted."},
		},
	}
	fake := &fakePB{deleteStream: stream}
	c := &GRPCClient{client: fake, username: "alice"}

	var out []string
	msg, err := c.DeleteLastMessage(context.Background(), scriptedInput("YES"), collectOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if msg != "Your last unread message was deleted." {
		t.Errorf("final message = %q", msg)
	}
	if len(stream.sent) != 1 {
		t.Fatalf("got %d sent requests, want 1", len(stream.sent))
	}
	if stream.sent[0].Username != "alice" || stream.sent[0].Confirmation != "yes" {
		t.Errorf("request = %+v", stream.sent[0])
	}
	if !stream.closed {
		t.Error("expected CloseSend to be called")
	}
}

func TestDeactivateAccount_Removed(t *testing.T) {
	stream := &fakeBidiStream[pb.DeactivateRequest, pb.Response]{
		recvQ: []*pb.Response{
			{ServerMessage: "Are you sure you want to deactivate your account? (yes/no)"},
			{ServerMessage: "Your account and sent messages are removed."},
		},
	}
	fake := &fakePB{deactivateStream: stream}
	c := &GRPCClient{client: fake, username: "alice", sessionToken: "tok"}

	var out []string
	removed, err := c.DeactivateAccount(context.Background(), scriptedInput("yes"), collectOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Fatal("expected account removal")
	}
	if c.username != "" || c.sessionToken != "" {
		t.Error("identity must be cleared after deactivation")
	}
}

func TestDeactivateAccount_Canceled(t *testing.T) {
	stream := &fakeBidiStream[pb.DeactivateRequest, pb.Response]{
		recvQ: []*pb.Response{
			{ServerMessage: "Are you sure you want to deactivate your account? (yes/no)"},
			{ServerMessage: "Deactivation canceled."},
		},
	}
	fake := &fakePB{deactivateStream: stream}
	c := &GRPCClient{client: fake, username: "alice", sessionToken: "tok"}

	var out []string
	removed, err := c.DeactivateAccount(context.Background(), scriptedInput("no"), collectOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Fatal("expected cancellation")
	}
	if c.username != "alice" || c.sessionToken != "tok" {
		t.Error("identity must survive a canceled deactivation")
	}
	if stream.sent[0].Confirmation != "no" {
		t.Errorf("confirmation = %q", stream.sent[0].Confirmation)
	}
}

func TestReceiveMessages_RendersFeed(t *testing.T) {
	stream := &fakeServerStream[pb.ReceiveResponse]{
		recvQ: []*pb.ReceiveResponse{
			{Timestamp: "2026-01-02 10:00:00", Sender: "bob", Message: "hi"},
			{Timestamp: "2026-01-02 10:00:05", Sender: "carol", Message: "hey"},
		},
	}
	fake := &fakePB{receiveStream: stream}
	c := &GRPCClient{client: fake, username: "alice"}

	var out []string
	err := c.ReceiveMessages(context.Background(), collectOutput(&out))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"[2026-01-02 10:00:00] bob: hi",
		"[2026-01-02 10:00:05] carol: hey",
	}
	if len(out) != len(want) {
		t.Fatalf("got %d lines, want %d", len(out), len(want))
	}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, out[i], want[i])
		}
	}
}
