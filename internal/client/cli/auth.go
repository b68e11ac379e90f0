package cli

import (
	"context"
	"os"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username and password pair and attempts to create
// a new account. On success the server's verdict already announces the user
// as logged in, so a session is established right away.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	confirmPassword, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}

	msg, err := a.api.Register(ctx, userName, password, confirmPassword)
	if err != nil {
		return err
	}
	printlnFn(msg)

	// A rejected registration simply fails this login quietly.
	_, ok, err := a.api.Login(ctx, userName, password)
	if err != nil {
		return err
	}
	if ok {
		a.userName = userName
		a.startFeed(ctx)
	}
	return nil
}

// Login prompts for credentials and tries to authenticate. On success the
// live message feed is started in the background.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", os.Stdout)
	if err != nil {
		return err
	}

	msg, ok, err := a.api.Login(ctx, userName, password)
	if err != nil {
		return err
	}
	printlnFn(msg)

	if ok {
		a.userName = userName
		a.startFeed(ctx)
	}
	return nil
}

// Logoff ends the server session, stops the feed and forgets the local user.
func (a *App) Logoff(ctx context.Context) error {
	msg, err := a.api.Logoff(ctx)
	if err != nil {
		return err
	}

	a.stopFeed()
	a.userName = ""
	printlnFn(msg)
	return nil
}
