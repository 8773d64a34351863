package thread

import "time"

// CommentRecord is a single comment as delivered by the platform API:
// a flat record pointing at its parent by ID. An empty ParentID marks a
// top-level comment.
type CommentRecord struct {
	ID            string    `json:"id"`
	ParentID      string    `json:"parentCommentId,omitempty"`
	Author        string    `json:"author,omitempty"`
	Body          string    `json:"body"`
	Score         int       `json:"score"`
	UpvoteCount   int       `json:"upvoteCount"`
	DownvoteCount int       `json:"downvoteCount"`
	CreatedAt     time.Time `json:"createdTime"`
}
