package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nkotak/student-collab/internal/models"
)

// ErrUsernameTaken is returned by CreateUser when the username is already
// registered.
var ErrUsernameTaken = errors.New("username already exists")

// UserServiceProvider defines the interface for credential storage.
type UserServiceProvider interface {
	FindByUsername(username string) (*models.User, error)
	CreateUser(username, password string) (models.User, error)
	Verify(username, password string) bool
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// FindByUsername retrieves a user by username, including the password hash.
// Returns nil without an error when no such user exists.
func (s *UserService) FindByUsername(username string) (*models.User, error) {
	user := &models.User{}
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// CreateUser creates a new user, hashing their password. The insert relies
// on the UNIQUE constraint on username, so concurrent signups for the same
// name resolve to exactly one winner; the loser gets ErrUsernameTaken.
func (s *UserService) CreateUser(username, password string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	_, err = s.db.Exec("INSERT INTO users(id, username, password_hash, created_at) VALUES(?, ?, ?, ?)",
		user.ID, user.Username, user.PasswordHash, user.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// Verify checks a username/password pair. It returns false both for an
// unknown username and for a wrong password; callers cannot tell which,
// so account existence is not leaked.
func (s *UserService) Verify(username, password string) bool {
	user, err := s.FindByUsername(username)
	if err != nil || user == nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}
