package conversation

import (
	"context"
	"strings"
)

// Confirmation drives the shared two-turn confirm flow: the server prompts,
// the client answers exactly once, and the flow resolves to a terminal
// reply whatever the answer was. Unlike triage there is no retry loop: any
// answer other than "yes" cancels.
type Confirmation struct {
	prompt     string
	cancelText string
	action     func(ctx context.Context, username string) (string, error)
	done       bool
}

// Prompt returns the opening server turn.
func (c *Confirmation) Prompt() Reply { return Reply{Text: c.prompt} }

// Done reports whether the flow has been resolved.
func (c *Confirmation) Done() bool { return c.done }

// Resolve consumes the single confirmation turn. The comparison is
// case-insensitive; only "yes" runs the action.
func (c *Confirmation) Resolve(ctx context.Context, username, confirmation string) (Reply, error) {
	c.done = true

	if strings.ToLower(strings.TrimSpace(confirmation)) != "yes" {
		return Reply{Text: c.cancelText}, nil
	}

	text, err := c.action(ctx, strings.TrimSpace(username))
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: text}, nil
}

// NewDeleteLastConfirmation builds the confirm flow guarding deletion of the
// caller's most recent unread sent message.
func NewDeleteLastConfirmation(store LastMessageDeleter) *Confirmation {
	return &Confirmation{
		prompt:     "Are you sure you want to delete your last unread message? (yes/no)",
		cancelText: "Delete canceled.",
		action: func(ctx context.Context, username string) (string, error) {
			deleted, err := store.DeleteLastUnread(ctx, username)
			if err != nil {
				return "", err
			}
			if !deleted {
				return "No unread messages to delete.", nil
			}
			return "Your last unread message was deleted.", nil
		},
	}
}

// NewDeactivateConfirmation builds the confirm flow guarding account
// deactivation.
func NewDeactivateConfirmation(users AccountDeactivator) *Confirmation {
	return &Confirmation{
		prompt:     "Are you sure you want to deactivate your account? (yes/no)",
		cancelText: "Deactivation canceled.",
		action: func(ctx context.Context, username string) (string, error) {
			if err := users.Deactivate(ctx, username); err != nil {
				return "", err
			}
			return "Your account and sent messages are removed.", nil
		},
	}
}
