package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/gochat/internal/common"
	"github.com/dmitrijs2005/gochat/internal/dbx"
	"github.com/dmitrijs2005/gochat/internal/server/auth"
	"github.com/dmitrijs2005/gochat/internal/server/config"
	"github.com/dmitrijs2005/gochat/internal/server/models"
	messagesrepo "github.com/dmitrijs2005/gochat/internal/server/repositories/messages"
	usersrepo "github.com/dmitrijs2005/gochat/internal/server/repositories/users"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

func newUserService(t *testing.T, db *sql.DB, rm *fakeRepoManager) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		SessionTokenValidityDuration: time.Hour,
	}
	return NewUserService(db, rm, cfg)
}

type fakeUsersRepo struct {
	created []*models.User
	deleted []string

	setActiveUser  string
	setActiveValue bool

	exists    bool
	existsErr error

	getOut *models.User
	getErr error

	listOut []string
	listErr error

	createErr    error
	setActiveErr error
	deleteErr    error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) error {
	f.created = append(f.created, u)
	return f.createErr
}

func (f *fakeUsersRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeUsersRepo) Exists(ctx context.Context, username string) (bool, error) {
	return f.exists, f.existsErr
}

func (f *fakeUsersRepo) SetActive(ctx context.Context, username string, active bool) error {
	f.setActiveUser = username
	f.setActiveValue = active
	return f.setActiveErr
}

func (f *fakeUsersRepo) Delete(ctx context.Context, username string) error {
	f.deleted = append(f.deleted, username)
	return f.deleteErr
}

func (f *fakeUsersRepo) ListUsernamesExcept(ctx context.Context, username string) ([]string, error) {
	return f.listOut, f.listErr
}

type fakeMessagesRepo struct {
	inserted   []*models.Message
	markedRead [][]int64
	deletedIDs []int64

	deletedSenders   []string
	deleteSenderErr  error
	insertErr        error
	countOut         int
	countErr         error
	bySenderOut      []models.SenderCount
	unreadOut        []models.Message
	lastOut          *models.Message
	lastErr          error
	deleteErr        error
	latestOut        int64
	latestErr        error
	receivedAfterOut []models.Message
}

func (f *fakeMessagesRepo) Insert(ctx context.Context, m *models.Message) (*models.Message, error) {
	f.inserted = append(f.inserted, m)
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	return m, nil
}

func (f *fakeMessagesRepo) CountUnread(ctx context.Context, receiver string) (int, error) {
	return f.countOut, f.countErr
}

func (f *fakeMessagesRepo) UnreadBySender(ctx context.Context, receiver string) ([]models.SenderCount, error) {
	return f.bySenderOut, nil
}

func (f *fakeMessagesRepo) UnreadFrom(ctx context.Context, receiver, sender string) ([]models.Message, error) {
	return f.unreadOut, nil
}

func (f *fakeMessagesRepo) MarkRead(ctx context.Context, ids []int64) error {
	f.markedRead = append(f.markedRead, ids)
	return nil
}

func (f *fakeMessagesRepo) LastUnreadFrom(ctx context.Context, sender string) (*models.Message, error) {
	if f.lastErr != nil {
		return nil, f.lastErr
	}
	return f.lastOut, nil
}

func (f *fakeMessagesRepo) Delete(ctx context.Context, id int64) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeMessagesRepo) DeleteBySender(ctx context.Context, sender string) error {
	f.deletedSenders = append(f.deletedSenders, sender)
	return f.deleteSenderErr
}

func (f *fakeMessagesRepo) LatestID(ctx context.Context, receiver string) (int64, error) {
	return f.latestOut, f.latestErr
}

func (f *fakeMessagesRepo) ReceivedAfter(ctx context.Context, receiver string, afterID int64) ([]models.Message, error) {
	return f.receivedAfterOut, nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	m *fakeMessagesRepo
}

func (rm *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (rm *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository       { return rm.u }
func (rm *fakeRepoManager) Messages(db dbx.DBTX) messagesrepo.Repository { return rm.m }

// --- Register ---

func TestRegister_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newUserService(t, db, rm)

	out, err := s.Register(context.Background(), " alice ", "Abcdef1!", "Abcdef1!")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if !out.OK || out.Message != "Registration successful. You are now logged in!" {
		t.Fatalf("unexpected outcome: %+v", out)
	}

	if len(rm.u.created) != 1 {
		t.Fatalf("want 1 created user, got %d", len(rm.u.created))
	}
	u := rm.u.created[0]
	if u.Username != "alice" || !u.Active {
		t.Fatalf("unexpected user: %+v", u)
	}
	if !auth.CheckPassword("Abcdef1!", u.PasswordDigest) {
		t.Fatal("stored digest does not verify against the password")
	}
}

func TestRegister_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		confirm  string
		taken    bool
		want     string
	}{
		{"empty username", "", "Abcdef1!", "Abcdef1!", false,
			"Registration canceled: All fields are required."},
		{"empty password", "alice", "  ", "Abcdef1!", false,
			"Registration canceled: All fields are required."},
		{"username taken", "alice", "Abcdef1!", "Abcdef1!", true,
			"Username taken. Please choose another."},
		{"weak password", "alice", "abcdefg", "abcdefg", false,
			"Invalid password: Must be >=7 chars, include uppercase, digit, and special char."},
		{"mismatch", "alice", "Abcdef1!", "Abcdef2!", false,
			"Passwords do not match."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newSQLMockDB(t)
			defer db.Close()

			rm := &fakeRepoManager{u: &fakeUsersRepo{exists: tt.taken}}
			s := newUserService(t, db, rm)

			out, err := s.Register(context.Background(), tt.username, tt.password, tt.confirm)
			if err != nil {
				t.Fatalf("Register error: %v", err)
			}
			if out.OK || out.Message != tt.want {
				t.Fatalf("unexpected outcome: %+v", out)
			}
			if len(rm.u.created) != 0 {
				t.Fatal("a rejected registration must not create a user")
			}
		})
	}
}

func TestRegister_StoreError(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{createErr: errors.New("db down")}}
	s := newUserService(t, db, rm)

	_, err := s.Register(context.Background(), "alice", "Abcdef1!", "Abcdef1!")
	if err == nil || !strings.Contains(err.Error(), "error creating user") {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	digest, err := auth.HashPassword("Abcdef1!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		getOut: &models.User{Username: "alice", PasswordDigest: digest},
	}}
	s := newUserService(t, db, rm)

	res, err := s.Login(context.Background(), "alice", "Abcdef1!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if !res.OK || res.Message != "Welcome, alice!" {
		t.Fatalf("unexpected outcome: %+v", res.Outcome)
	}
	if rm.u.setActiveUser != "alice" || !rm.u.setActiveValue {
		t.Fatal("login must mark the account active")
	}

	username, err := auth.GetUsernameFromToken(res.SessionToken, []byte("k"))
	if err != nil {
		t.Fatalf("minted token does not validate: %v", err)
	}
	if username != "alice" {
		t.Fatalf("unexpected token username: %q", username)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrorNotFound}}
	s := newUserService(t, db, rm)

	res, err := s.Login(context.Background(), "ghost", "Abcdef1!")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.OK || res.Message != "User not found." {
		t.Fatalf("unexpected outcome: %+v", res.Outcome)
	}
	if res.SessionToken != "" {
		t.Fatal("a failed login must not mint a token")
	}
}

func TestLogin_IncorrectPassword(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	digest, err := auth.HashPassword("Abcdef1!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	rm := &fakeRepoManager{u: &fakeUsersRepo{
		getOut: &models.User{Username: "alice", PasswordDigest: digest},
	}}
	s := newUserService(t, db, rm)

	res, err := s.Login(context.Background(), "alice", "Wrong1!pass")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.OK || res.Message != "Incorrect password." {
		t.Fatalf("unexpected outcome: %+v", res.Outcome)
	}
}

// --- Logoff ---

func TestLogoff(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newUserService(t, db, rm)

	out, err := s.Logoff(context.Background(), "alice")
	if err != nil {
		t.Fatalf("Logoff error: %v", err)
	}
	if !out.OK || out.Message != "alice has been logged off." {
		t.Fatalf("unexpected outcome: %+v", out)
	}
	if rm.u.setActiveUser != "alice" || rm.u.setActiveValue {
		t.Fatal("logoff must mark the account inactive")
	}
}

func TestLogoff_EmptyUsername(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}}
	s := newUserService(t, db, rm)

	out, err := s.Logoff(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Logoff error: %v", err)
	}
	if out.OK || out.Message != "No username provided." {
		t.Fatalf("unexpected outcome: %+v", out)
	}
}

// --- SearchUsers ---

func TestSearchUsers(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{u: &fakeUsersRepo{listOut: []string{"bob", "carol"}}}
	s := newUserService(t, db, rm)

	got, err := s.SearchUsers(context.Background(), "alice")
	if err != nil {
		t.Fatalf("SearchUsers error: %v", err)
	}
	if len(got) != 2 || got[0] != "bob" || got[1] != "carol" {
		t.Fatalf("unexpected usernames: %v", got)
	}
}

// --- Deactivate ---

func TestDeactivate_DeletesMessagesAndUserInOneTx(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{u: &fakeUsersRepo{}, m: &fakeMessagesRepo{}}
	s := newUserService(t, db, rm)

	if err := s.Deactivate(context.Background(), "alice"); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}

	if len(rm.m.deletedSenders) != 1 || rm.m.deletedSenders[0] != "alice" {
		t.Fatalf("unexpected message deletions: %v", rm.m.deletedSenders)
	}
	if len(rm.u.deleted) != 1 || rm.u.deleted[0] != "alice" {
		t.Fatalf("unexpected user deletions: %v", rm.u.deleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestDeactivate_RollsBackOnError(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()
	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{
		u: &fakeUsersRepo{},
		m: &fakeMessagesRepo{deleteSenderErr: errors.New("db down")},
	}
	s := newUserService(t, db, rm)

	err := s.Deactivate(context.Background(), "alice")
	if err == nil || !strings.Contains(err.Error(), "error deleting sent messages") {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if len(rm.u.deleted) != 0 {
		t.Fatal("user row must not be deleted after the message cascade failed")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}
