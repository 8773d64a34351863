package cache

import (
	"database/sql"
	"time"

	"github.com/threadlet/threadlet/internal/api"
)

// GetPost retrieves a cached post. Returns (post, isFresh, error); a cache
// miss yields a nil post.
func (d *DB) GetPost(id string, ttl time.Duration) (*api.Post, bool, error) {
	row := d.db.QueryRow(`SELECT id, title, author, body, url, score,
		comment_count, created_at, fetched_at FROM posts WHERE id = ?`, id)

	var post api.Post
	var author, body, url sql.NullString
	var createdAt string
	var fetchedAt int64

	err := row.Scan(&post.ID, &post.Title, &author, &body, &url,
		&post.Score, &post.CommentCount, &createdAt, &fetchedAt)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	post.Author = author.String
	post.Body = body.String
	post.URL = url.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		post.CreatedAt = t
	}

	isFresh := time.Since(time.Unix(fetchedAt, 0)) < ttl
	return &post, isFresh, nil
}

// PutPost stores a post in the cache.
func (d *DB) PutPost(post *api.Post) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO posts
		(id, title, author, body, url, score, comment_count, created_at, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		post.ID, post.Title, nullStr(post.Author), nullStr(post.Body),
		nullStr(post.URL), post.Score, post.CommentCount,
		post.CreatedAt.UTC().Format(time.RFC3339), time.Now().Unix())
	return err
}
