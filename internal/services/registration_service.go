package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkotak/student-collab/internal/models"
)

// RegistrationServiceProvider defines the interface for interest
// registrations.
type RegistrationServiceProvider interface {
	CreateRegistration(username string, post models.Post, name, email, interests string) (models.Registration, error)
	ListRegistrationsByUsername(username string) ([]models.Registration, error)
}

// RegistrationService provides business logic for interest registrations.
type RegistrationService struct {
	db *sql.DB
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(db *sql.DB) *RegistrationService {
	return &RegistrationService{db: db}
}

// CreateRegistration records the user's interest in a post. The post title
// is copied into the row at this point; the registration does not depend on
// the post still existing later. A user may register for the same post more
// than once.
func (s *RegistrationService) CreateRegistration(username string, post models.Post, name, email, interests string) (models.Registration, error) {
	reg := models.Registration{
		ID:        uuid.New().String(),
		Username:  username,
		PostID:    post.ID,
		PostTitle: post.Title,
		Name:      name,
		Email:     email,
		Interests: interests,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec(
		"INSERT INTO post_registrations(id, username, post_id, post_title, name, email, interests, created_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?)",
		reg.ID, reg.Username, reg.PostID, reg.PostTitle, reg.Name, reg.Email, reg.Interests, reg.CreatedAt)
	if err != nil {
		return models.Registration{}, fmt.Errorf("failed to create registration: %w", err)
	}
	return reg, nil
}

// ListRegistrationsByUsername returns the registrations made by the given
// user.
func (s *RegistrationService) ListRegistrationsByUsername(username string) ([]models.Registration, error) {
	rows, err := s.db.Query(
		"SELECT id, username, post_id, post_title, name, email, interests, created_at FROM post_registrations WHERE username = ? ORDER BY created_at, id",
		username)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		var reg models.Registration
		if err := rows.Scan(&reg.ID, &reg.Username, &reg.PostID, &reg.PostTitle, &reg.Name, &reg.Email, &reg.Interests, &reg.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan registration: %w", err)
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating registrations: %w", err)
	}
	return regs, nil
}
