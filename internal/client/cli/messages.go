package cli

import (
	"context"
	"os"
)

// promptLine reads one line of input for an interactive server conversation.
func (a *App) promptLine() (string, error) {
	return getSimpleText(a.reader, "", os.Stdout)
}

func (a *App) printServerTurn(msg string) {
	printlnFn(msg)
}

// Send submits a raw "@recipient body" line to the server.
func (a *App) Send(ctx context.Context, line string) error {
	msg, ok, err := a.api.SendMessage(ctx, line)
	if err != nil {
		return err
	}
	if ok {
		printlnFn("Message sent.")
	} else {
		printlnFn(msg)
	}
	return nil
}

// CheckMessages runs the interactive unread triage conversation.
func (a *App) CheckMessages(ctx context.Context) error {
	return a.api.CheckMessages(ctx, a.promptLine, a.printServerTurn)
}

// DeleteLastMessage runs the confirmation dialog for deleting the last
// unread message the user sent.
func (a *App) DeleteLastMessage(ctx context.Context) error {
	_, err := a.api.DeleteLastMessage(ctx, a.promptLine, a.printServerTurn)
	return err
}

// DeactivateAccount runs the confirmation dialog for account removal. When
// the account is gone the feed stops and the local user is forgotten.
func (a *App) DeactivateAccount(ctx context.Context) error {
	removed, err := a.api.DeactivateAccount(ctx, a.promptLine, a.printServerTurn)
	if err != nil {
		return err
	}
	if removed {
		a.stopFeed()
		a.userName = ""
	}
	return nil
}

// SearchUsers lists the other registered users.
func (a *App) SearchUsers(ctx context.Context) error {
	msg, users, err := a.api.SearchUsers(ctx)
	if err != nil {
		return err
	}
	printlnFn(msg)
	for _, u := range users {
		printlnFn(" - " + u)
	}
	return nil
}
