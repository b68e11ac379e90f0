package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/gochat/internal/common"
	"github.com/dmitrijs2005/gochat/internal/dbx"
	"github.com/dmitrijs2005/gochat/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Insert(ctx context.Context, m *models.Message) (*models.Message, error) {

	query :=
		`INSERT INTO messages (receiver, sender, body, is_read)
		 VALUES ($1, $2, $3, FALSE)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query, m.Receiver, m.Sender, m.Body).Scan(&m.ID, &m.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) CountUnread(ctx context.Context, receiver string) (int, error) {
	query :=
		`SELECT COUNT(*) FROM messages
		 WHERE receiver = $1 AND is_read = FALSE
		 `

	var cnt int
	err := r.db.QueryRowContext(ctx, query, receiver).Scan(&cnt)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return cnt, nil
}

func (r *PostgresRepository) UnreadBySender(ctx context.Context, receiver string) ([]models.SenderCount, error) {
	query :=
		`SELECT sender, COUNT(*) FROM messages
		 WHERE receiver = $1 AND is_read = FALSE
		 GROUP BY sender
		 ORDER BY sender
		 `

	rows, err := r.db.QueryContext(ctx, query, receiver)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	counts := make([]models.SenderCount, 0)
	for rows.Next() {
		var sc models.SenderCount
		if err := rows.Scan(&sc.Sender, &sc.Count); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return counts, nil
}

func (r *PostgresRepository) UnreadFrom(ctx context.Context, receiver, sender string) ([]models.Message, error) {
	query :=
		`SELECT id, receiver, sender, body, created_at, is_read FROM messages
		 WHERE receiver = $1 AND sender = $2 AND is_read = FALSE
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, receiver, sender)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

// MarkRead flips is_read for the given ids in one statement, so a batch is
// marked atomically. Re-marking an already read id is a no-op.
func (r *PostgresRepository) MarkRead(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(
		`UPDATE messages SET is_read = TRUE
		 WHERE id IN (%s)
		 `, strings.Join(placeholders, ", "))

	_, err := r.db.ExecContext(ctx, query, args...)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LastUnreadFrom(ctx context.Context, sender string) (*models.Message, error) {
	query :=
		`SELECT id, receiver, sender, body, created_at, is_read FROM messages
		 WHERE sender = $1 AND is_read = FALSE
		 ORDER BY id DESC
		 LIMIT 1
		 `

	m := &models.Message{}
	err := r.db.QueryRowContext(ctx, query, sender).Scan(
		&m.ID, &m.Receiver, &m.Sender, &m.Body, &m.CreatedAt, &m.IsRead)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM messages
		 WHERE id = $1
		 `

	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) DeleteBySender(ctx context.Context, sender string) error {
	query :=
		`DELETE FROM messages
		 WHERE sender = $1
		 `

	_, err := r.db.ExecContext(ctx, query, sender)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) LatestID(ctx context.Context, receiver string) (int64, error) {
	query :=
		`SELECT COALESCE(MAX(id), 0) FROM messages
		 WHERE receiver = $1
		 `

	var id int64
	err := r.db.QueryRowContext(ctx, query, receiver).Scan(&id)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return id, nil
}

func (r *PostgresRepository) ReceivedAfter(ctx context.Context, receiver string, afterID int64) ([]models.Message, error) {
	query :=
		`SELECT id, receiver, sender, body, created_at, is_read FROM messages
		 WHERE receiver = $1 AND id > $2
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, receiver, afterID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	return scanMessages(rows)
}

func scanMessages(rows *sql.Rows) ([]models.Message, error) {
	msgs := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Receiver, &m.Sender, &m.Body, &m.CreatedAt, &m.IsRead); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return msgs, nil
}
