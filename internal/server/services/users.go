package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gochat/internal/common"
	"github.com/dmitrijs2005/gochat/internal/dbx"
	"github.com/dmitrijs2005/gochat/internal/server/auth"
	"github.com/dmitrijs2005/gochat/internal/server/config"
	"github.com/dmitrijs2005/gochat/internal/server/models"
	"github.com/dmitrijs2005/gochat/internal/server/repositories/repomanager"
)

// LoginResult carries the login outcome plus the session token minted on
// success.
type LoginResult struct {
	Outcome
	SessionToken string
}

// UserService implements account lifecycle: registration, login, logoff,
// the user directory, and deactivation.
type UserService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	secretKey                    []byte
	sessionTokenValidityDuration time.Duration
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                           db,
		repomanager:                  m,
		secretKey:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
	}
}

// Register creates an account after validating the inputs. Validation
// failures come back as a rejected Outcome; only infrastructure failures
// surface as errors.
func (s *UserService) Register(ctx context.Context, username, password, confirmPassword string) (Outcome, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	confirmPassword = strings.TrimSpace(confirmPassword)

	if username == "" || password == "" || confirmPassword == "" {
		return rejected("Registration canceled: All fields are required."), nil
	}

	repo := s.repomanager.Users(s.db)

	exists, err := repo.Exists(ctx, username)
	if err != nil {
		return Outcome{}, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return rejected("Username taken. Please choose another."), nil
	}

	if !auth.ValidPassword(password) {
		return rejected("Invalid password: Must be >=7 chars, include uppercase, digit, and special char."), nil
	}
	if password != confirmPassword {
		return rejected("Passwords do not match."), nil
	}

	digest, err := auth.HashPassword(password)
	if err != nil {
		return Outcome{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{Username: username, PasswordDigest: digest, Active: true}
	if err := repo.Create(ctx, user); err != nil {
		return Outcome{}, fmt.Errorf("error creating user: %w", err)
	}

	return accepted("Registration successful. You are now logged in!"), nil
}

// Login verifies the credentials, marks the account active, and mints a
// session token for subsequent calls.
func (s *UserService) Login(ctx context.Context, username, password string) (LoginResult, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return LoginResult{Outcome: rejected("User not found.")}, nil
		}
		return LoginResult{}, fmt.Errorf("error fetching user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordDigest) {
		return LoginResult{Outcome: rejected("Incorrect password.")}, nil
	}

	if err := repo.SetActive(ctx, username, true); err != nil {
		return LoginResult{}, fmt.Errorf("error activating user: %w", err)
	}

	token, err := auth.GenerateToken(username, s.secretKey, s.sessionTokenValidityDuration)
	if err != nil {
		return LoginResult{}, fmt.Errorf("error generating session token: %w", err)
	}

	return LoginResult{
		Outcome:      accepted(fmt.Sprintf("Welcome, %s!", username)),
		SessionToken: token,
	}, nil
}

// Logoff marks the account inactive. An unknown username is not an error:
// the row update is simply a no-op.
func (s *UserService) Logoff(ctx context.Context, username string) (Outcome, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return rejected("No username provided."), nil
	}

	repo := s.repomanager.Users(s.db)
	if err := repo.SetActive(ctx, username, false); err != nil {
		return Outcome{}, fmt.Errorf("error deactivating user: %w", err)
	}

	return accepted(fmt.Sprintf("%s has been logged off.", username)), nil
}

// SearchUsers lists every username except the caller's own.
func (s *UserService) SearchUsers(ctx context.Context, username string) ([]string, error) {
	repo := s.repomanager.Users(s.db)

	usernames, err := repo.ListUsernamesExcept(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return usernames, nil
}

// Deactivate removes the account row together with every message the user
// sent, in one transaction.
func (s *UserService) Deactivate(ctx context.Context, username string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.repomanager.Messages(tx).DeleteBySender(ctx, username); err != nil {
			return fmt.Errorf("error deleting sent messages: %w", err)
		}
		if err := s.repomanager.Users(tx).Delete(ctx, username); err != nil {
			return fmt.Errorf("error deleting user: %w", err)
		}
		return nil
	})
}
