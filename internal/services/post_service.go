package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nkotak/student-collab/internal/models"
)

// PostServiceProvider defines the interface for post storage.
type PostServiceProvider interface {
	ListPosts() ([]models.Post, error)
	CreatePost(title, content, author string) (models.Post, error)
	GetPost(id string) (*models.Post, error)
	ListPostsByAuthor(author string) ([]models.Post, error)
}

// PostService provides business logic for collaboration posts.
type PostService struct {
	db *sql.DB
}

// NewPostService creates a new PostService.
func NewPostService(db *sql.DB) *PostService {
	return &PostService{db: db}
}

// ListPosts returns all posts in insertion order.
func (s *PostService) ListPosts() ([]models.Post, error) {
	rows, err := s.db.Query("SELECT id, title, content, author, created_at FROM posts ORDER BY created_at, id")
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// CreatePost stores a new post and assigns it an id.
func (s *PostService) CreatePost(title, content, author string) (models.Post, error) {
	post := models.Post{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}

	_, err := s.db.Exec("INSERT INTO posts(id, title, content, author, created_at) VALUES(?, ?, ?, ?, ?)",
		post.ID, post.Title, post.Content, post.Author, post.CreatedAt)
	if err != nil {
		return models.Post{}, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// GetPost retrieves a post by id. A malformed id simply matches nothing,
// so both malformed and missing ids return nil without an error.
func (s *PostService) GetPost(id string) (*models.Post, error) {
	post := &models.Post{}
	row := s.db.QueryRow("SELECT id, title, content, author, created_at FROM posts WHERE id = ?", id)
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &post.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	return post, nil
}

// ListPostsByAuthor returns the posts created by the given username.
func (s *PostService) ListPostsByAuthor(author string) ([]models.Post, error) {
	rows, err := s.db.Query("SELECT id, title, content, author, created_at FROM posts WHERE author = ? ORDER BY created_at, id", author)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by author: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Author, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}
	return posts, nil
}
