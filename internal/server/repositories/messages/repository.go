package messages

import (
	"context"

	"github.com/dmitrijs2005/gochat/internal/server/models"
)

type Repository interface {
	Insert(ctx context.Context, m *models.Message) (*models.Message, error)
	CountUnread(ctx context.Context, receiver string) (int, error)
	UnreadBySender(ctx context.Context, receiver string) ([]models.SenderCount, error)
	UnreadFrom(ctx context.Context, receiver, sender string) ([]models.Message, error)
	MarkRead(ctx context.Context, ids []int64) error
	LastUnreadFrom(ctx context.Context, sender string) (*models.Message, error)
	Delete(ctx context.Context, id int64) error
	DeleteBySender(ctx context.Context, sender string) error
	LatestID(ctx context.Context, receiver string) (int64, error)
	ReceivedAfter(ctx context.Context, receiver string, afterID int64) ([]models.Message, error)
}
