package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {

	query :=
		`INSERT INTO users (username, password_digest, active)
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, user.Username, user.PasswordDigest, user.Active)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT username, password_digest, active FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.PasswordDigest, &user.Active)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, username string) (bool, error) {
	query :=
		`SELECT COUNT(*) FROM users
		 WHERE username = $1
		 `

	var cnt int
	err := r.db.QueryRowContext(ctx, query, username).Scan(&cnt)

	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return cnt > 0, nil
}

func (r *PostgresRepository) SetActive(ctx context.Context, username string, active bool) error {
	query :=
		`UPDATE users SET active = $2
		 WHERE username = $1
		 `

	_, err := r.db.ExecContext(ctx, query, username, active)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, username string) error {
	query :=
		`DELETE FROM users
		 WHERE username = $1
		 `

	_, err := r.db.ExecContext(ctx, query, username)

	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListUsernamesExcept(ctx context.Context, username string) ([]string, error) {
	query :=
		`SELECT username FROM users
		 WHERE username <> $1
		 ORDER BY username
		 `

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	usernames := make([]string, 0)
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		usernames = append(usernames, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return usernames, nil
}
