package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}

func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to gochat CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	runREPL(ctx, a, a.getStatus, scanner)

	a.stopFeed()
}
