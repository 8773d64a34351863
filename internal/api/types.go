package api

import "time"

// Post is a discussion-platform submission that owns a comment thread.
type Post struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Author       string    `json:"author"`
	Body         string    `json:"body,omitempty"`
	URL          string    `json:"url,omitempty"`
	Score        int       `json:"score"`
	CommentCount int       `json:"commentCount"`
	CreatedAt    time.Time `json:"createdTime"`
}
