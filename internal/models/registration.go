package models

import "time"

// Registration records a user's interest in a post. PostTitle is copied
// from the post at creation time; later edits to the post do not touch it.
type Registration struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	PostID    string    `json:"postId"`
	PostTitle string    `json:"postTitle"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Interests string    `json:"interests"`
	CreatedAt time.Time `json:"createdAt"`
}
