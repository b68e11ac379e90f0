package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	CheckMessages(ctx context.Context) error
	DeleteLastMessage(ctx context.Context) error
	DeactivateAccount(ctx context.Context) error
	SearchUsers(ctx context.Context) error
	Logoff(ctx context.Context) error
	Send(ctx context.Context, line string) error
}

// runREPL starts a simple read-eval-print loop for the gochat CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. A line starting with '@' is a
// direct message and goes to Send verbatim. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - @user message  — send a direct message
//	  - check          — triage unread messages interactively
//	  - delete         — delete the last unread message you sent
//	  - deactivate     — remove the account and its sent messages
//	  - search         — list other users
//	  - logoff         — end the session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gochat %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		if strings.HasPrefix(cmd, "@") {
			_ = a.Send(ctx, line)
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: @user <message>, check, delete, deactivate, search, logoff, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "check", "checkmessages":
			_ = a.CheckMessages(ctx)

		case "delete":
			_ = a.DeleteLastMessage(ctx)

		case "deactivate":
			_ = a.DeactivateAccount(ctx)

		case "search":
			_ = a.SearchUsers(ctx)

		case "logoff":
			_ = a.Logoff(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
