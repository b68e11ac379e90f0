package conversation

import (
	"context"

	"github.com/dmitrijs2005/gochat/internal/server/models"
)

// TriageStore is the slice of the message store the triage conversation
// depends on.
type TriageStore interface {
	CountUnread(ctx context.Context, receiver string) (int, error)
	UnreadBySender(ctx context.Context, receiver string) ([]models.SenderCount, error)
	UnreadFrom(ctx context.Context, receiver, sender string) ([]models.Message, error)
	MarkRead(ctx context.Context, ids []int64) error
}

// LastMessageDeleter removes the caller's most recent unread sent message,
// reporting whether anything was deleted.
type LastMessageDeleter interface {
	DeleteLastUnread(ctx context.Context, sender string) (bool, error)
}

// AccountDeactivator removes an account together with every message it sent.
type AccountDeactivator interface {
	Deactivate(ctx context.Context, username string) error
}
