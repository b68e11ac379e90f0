package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	sent  string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) CheckMessages(ctx context.Context) error {
	f.calls = append(f.calls, "check")
	return nil
}
func (f *fakeExec) DeleteLastMessage(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) DeactivateAccount(ctx context.Context) error {
	f.calls = append(f.calls, "deactivate")
	return nil
}
func (f *fakeExec) SearchUsers(ctx context.Context) error {
	f.calls = append(f.calls, "search")
	return nil
}
func (f *fakeExec) Logoff(ctx context.Context) error {
	f.calls = append(f.calls, "logoff")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Send(ctx context.Context, line string) error {
	f.calls = append(f.calls, "send")
	f.sent = line
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"@bob hello there",
		"check",
		"search",
		"foobar",
		"logoff",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "send", "check", "search", "logoff"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls = %v, want %v", exec.calls, wantOrder)
	}
	for i := range wantOrder {
		if exec.calls[i] != wantOrder[i] {
			t.Fatalf("commands order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
	if exec.sent != "@bob hello there" {
		t.Fatalf("sent line = %q", exec.sent)
	}
}

func TestRunREPL_QuitWithoutCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("\n   \nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_DeleteAndDeactivate(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("delete\ndeactivate\nexit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "" }, sc)

	want := []string{"delete", "deactivate"}
	if len(exec.calls) != 2 || exec.calls[0] != want[0] || exec.calls[1] != want[1] {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
}
