package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gochat/internal/common"
	"github.com/dmitrijs2005/gochat/internal/server/models"
	"github.com/dmitrijs2005/gochat/internal/server/repositories/repomanager"
)

// MessageService implements direct-message delivery and the store operations
// consumed by the streaming conversations (triage, delete-last, live feed).
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Send parses a raw "@recipient body" line from sender and stores the
// message unread. Format and recipient problems come back as a rejected
// Outcome; only store failures surface as errors.
func (s *MessageService) Send(ctx context.Context, sender, rawText string) (Outcome, error) {
	text := strings.TrimSpace(rawText)

	if !strings.HasPrefix(text, "@") {
		return rejected("Message must start with '@username' for a direct message."), nil
	}

	parts := strings.SplitN(text, " ", 2)
	if len(parts) < 2 {
		return rejected("Invalid format. Use '@username message'."), nil
	}
	receiver := parts[0][1:]
	body := parts[1]

	exists, err := s.repomanager.Users(s.db).Exists(ctx, receiver)
	if err != nil {
		return Outcome{}, fmt.Errorf("error checking recipient: %w", err)
	}
	if !exists {
		return rejected("Recipient does not exist."), nil
	}

	m := &models.Message{Receiver: receiver, Sender: sender, Body: body}
	if _, err := s.repomanager.Messages(s.db).Insert(ctx, m); err != nil {
		return Outcome{}, fmt.Errorf("error storing message: %w", err)
	}

	return accepted(""), nil
}

// CountUnread returns the number of unread messages addressed to receiver.
func (s *MessageService) CountUnread(ctx context.Context, receiver string) (int, error) {
	return s.repomanager.Messages(s.db).CountUnread(ctx, receiver)
}

// UnreadBySender returns per-sender unread counts for receiver.
func (s *MessageService) UnreadBySender(ctx context.Context, receiver string) ([]models.SenderCount, error) {
	return s.repomanager.Messages(s.db).UnreadBySender(ctx, receiver)
}

// UnreadFrom returns receiver's unread messages from one sender, oldest
// first.
func (s *MessageService) UnreadFrom(ctx context.Context, receiver, sender string) ([]models.Message, error) {
	return s.repomanager.Messages(s.db).UnreadFrom(ctx, receiver, sender)
}

// MarkRead flips the read flag on one delivered batch.
func (s *MessageService) MarkRead(ctx context.Context, ids []int64) error {
	return s.repomanager.Messages(s.db).MarkRead(ctx, ids)
}

// DeleteLastUnread removes the most recent message sender sent that the
// recipient has not read yet. It reports false when no such message exists.
func (s *MessageService) DeleteLastUnread(ctx context.Context, sender string) (bool, error) {
	repo := s.repomanager.Messages(s.db)

	m, err := repo.LastUnreadFrom(ctx, sender)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("error finding last unread message: %w", err)
	}

	if err := repo.Delete(ctx, m.ID); err != nil {
		return false, fmt.Errorf("error deleting message: %w", err)
	}
	return true, nil
}

// LatestID returns the id of the newest message addressed to receiver, or 0
// when the inbox is empty. Used as the live-feed starting cursor.
func (s *MessageService) LatestID(ctx context.Context, receiver string) (int64, error) {
	return s.repomanager.Messages(s.db).LatestID(ctx, receiver)
}

// ReceivedAfter returns messages addressed to receiver with an id greater
// than afterID, oldest first.
func (s *MessageService) ReceivedAfter(ctx context.Context, receiver string, afterID int64) ([]models.Message, error) {
	return s.repomanager.Messages(s.db).ReceivedAfter(ctx, receiver, afterID)
}
