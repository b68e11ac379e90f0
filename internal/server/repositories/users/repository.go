package users

import (
	"context"

	"github.com/dmitrijs2005/gochat/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
	SetActive(ctx context.Context, username string, active bool) error
	Delete(ctx context.Context, username string) error
	ListUsernamesExcept(ctx context.Context, username string) ([]string, error)
}
