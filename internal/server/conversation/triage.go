// Package conversation implements the stateful conversational flows of the
// chat server: unread-message triage and the confirmation-gated mutations
// (delete-last, deactivate). Each flow is an explicit state machine advanced
// one client turn at a time, decoupled from the transport so it can be
// driven by a gRPC stream in production and by plain calls in tests.
package conversation

import (
	"context"
	"fmt"
	"strings"
)

// BatchSize is the number of messages delivered and marked read as one
// atomic unit during triage.
const BatchSize = 5

// TimestampLayout is the format used when rendering message timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// Stage identifies the triage conversation state awaiting the next client
// turn.
type Stage int

const (
	StageAwaitUsername Stage = iota
	StageAwaitChoice
	StageAwaitSender
	StageDone
)

// Turn is one client request within a streaming conversation. Which field is
// meaningful depends on the current stage.
type Turn struct {
	Username string
	Choice   string
	Sender   string
}

// Reply is one server turn. Sender and Body are set only on message-delivery
// replies.
type Reply struct {
	Text   string
	Sender string
	Body   string
}

// Triage walks a user through discovering and reading unread messages, one
// sender at a time, marking batches of BatchSize as read as they are
// delivered.
type Triage struct {
	store    TriageStore
	stage    Stage
	username string
}

func NewTriage(store TriageStore) *Triage {
	return &Triage{store: store, stage: StageAwaitUsername}
}

// Stage returns the state the conversation is currently awaiting input in.
func (t *Triage) Stage() Stage { return t.stage }

// Done reports whether the conversation reached a terminal reply.
func (t *Triage) Done() bool { return t.stage == StageDone }

// Next consumes one client turn and returns the server turns it produces.
// A batch that was marked read is always present in the returned replies,
// even when a later batch fails: on error the replies produced so far are
// returned alongside the error so the client still sees every message whose
// read flag was flipped.
func (t *Triage) Next(ctx context.Context, turn Turn) ([]Reply, error) {
	switch t.stage {
	case StageAwaitUsername:
		return t.awaitUsername(ctx, turn)
	case StageAwaitChoice:
		return t.awaitChoice(ctx, turn)
	case StageAwaitSender:
		return t.awaitSender(ctx, turn)
	default:
		return nil, nil
	}
}

func (t *Triage) awaitUsername(ctx context.Context, turn Turn) ([]Reply, error) {
	username := strings.TrimSpace(turn.Username)
	if username == "" {
		t.stage = StageDone
		return []Reply{{Text: "No username provided. Aborting."}}, nil
	}

	count, err := t.store.CountUnread(ctx, username)
	if err != nil {
		return nil, err
	}

	if count == 0 {
		t.stage = StageDone
		return []Reply{{Text: "You have 0 unread messages."}}, nil
	}

	t.username = username
	t.stage = StageAwaitChoice
	return []Reply{{Text: fmt.Sprintf(
		"You have %d unread messages.\nType '1' to read them, or '2' to skip.", count)}}, nil
}

func (t *Triage) awaitChoice(ctx context.Context, turn Turn) ([]Reply, error) {
	switch strings.TrimSpace(turn.Choice) {
	case "2":
		t.stage = StageDone
		return []Reply{{Text: "Skipping reading messages."}}, nil

	case "1":
		counts, err := t.store.UnreadBySender(ctx, t.username)
		if err != nil {
			return nil, err
		}
		if len(counts) == 0 {
			t.stage = StageDone
			return []Reply{{Text: "No unread messages found."}}, nil
		}

		parts := make([]string, 0, len(counts))
		for _, sc := range counts {
			parts = append(parts, fmt.Sprintf("%s(%d)", sc.Sender, sc.Count))
		}
		t.stage = StageAwaitSender
		return []Reply{{Text: fmt.Sprintf(
			"Unread from: %s\nType the sender's name to read those messages.",
			strings.Join(parts, ", "))}}, nil

	default:
		// Re-prompt without consuming the conversation.
		return []Reply{{Text: "Invalid choice. Please type '1' or '2'."}}, nil
	}
}

func (t *Triage) awaitSender(ctx context.Context, turn Turn) ([]Reply, error) {
	sender := strings.TrimSpace(turn.Sender)
	if sender == "" {
		return []Reply{{Text: "Please provide a valid sender name."}}, nil
	}

	msgs, err := t.store.UnreadFrom(ctx, t.username, sender)
	if err != nil {
		return nil, err
	}
	if len(msgs) == 0 {
		t.stage = StageDone
		return []Reply{{Text: fmt.Sprintf("No unread messages from %s.", sender)}}, nil
	}

	var replies []Reply
	for start := 0; start < len(msgs); start += BatchSize {
		end := start + BatchSize
		if end > len(msgs) {
			end = len(msgs)
		}
		batch := msgs[start:end]

		ids := make([]int64, 0, len(batch))
		for _, m := range batch {
			replies = append(replies, Reply{
				Text:   fmt.Sprintf("%s %s: %s", m.CreatedAt.Format(TimestampLayout), m.Sender, m.Body),
				Sender: m.Sender,
				Body:   m.Body,
			})
			ids = append(ids, m.ID)
		}

		if err := t.store.MarkRead(ctx, ids); err != nil {
			return replies, err
		}
		replies = append(replies, Reply{Text: "(This batch marked as read.)"})
	}

	t.stage = StageDone
	replies = append(replies, Reply{Text: "Done reading messages from this sender."})
	return replies, nil
}
