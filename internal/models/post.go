package models

import "time"

// Post is a collaboration opportunity created by a user. Author is a
// denormalized username string, not an enforced reference.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}
