// Package cli implements the interactive terminal front end for gochat: a
// small REPL that drives the gRPC client wrapper.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/gochat/internal/client/client"
	"github.com/dmitrijs2005/gochat/internal/client/config"
)

// ChatAPI is the backend surface the CLI drives. The real gRPC client
// satisfies it; tests can provide a stub.
type ChatAPI interface {
	Register(ctx context.Context, username, password, confirmPassword string) (string, error)
	Login(ctx context.Context, username, password string) (string, bool, error)
	Logoff(ctx context.Context) (string, error)
	SendMessage(ctx context.Context, text string) (string, bool, error)
	SearchUsers(ctx context.Context) (string, []string, error)
	CheckMessages(ctx context.Context, input client.InputFunc, output client.OutputFunc) error
	DeleteLastMessage(ctx context.Context, input client.InputFunc, output client.OutputFunc) (string, error)
	DeactivateAccount(ctx context.Context, input client.InputFunc, output client.OutputFunc) (bool, error)
	ReceiveMessages(ctx context.Context, output client.OutputFunc) error
	Close() error
}

type App struct {
	config     *config.Config
	api        ChatAPI
	userName   string
	reader     *bufio.Reader
	feedCancel context.CancelFunc
}

func NewApp(c *config.Config) (*App, error) {

	apiClient, err := client.NewChatClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	return &App{config: c, api: apiClient, reader: bufio.NewReader(os.Stdin)}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.api.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

// startFeed launches the live message feed in the background. Any previous
// feed is stopped first so at most one runs at a time.
func (a *App) startFeed(ctx context.Context) {
	a.stopFeed()

	feedCtx, cancel := context.WithCancel(ctx)
	a.feedCancel = cancel

	go func() {
		_ = a.api.ReceiveMessages(feedCtx, func(msg string) {
			printlnFn(msg)
		})
	}()
}

func (a *App) stopFeed() {
	if a.feedCancel != nil {
		a.feedCancel()
		a.feedCancel = nil
	}
}
