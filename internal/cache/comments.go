package cache

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/threadlet/threadlet/internal/thread"
)

// GetComments retrieves a post's cached comment list in the order it was
// stored. Returns (records, isFresh, error); a cache miss yields nil
// records. isFresh indicates the rows are within the TTL.
func (d *DB) GetComments(postID string, ttl time.Duration) ([]thread.CommentRecord, bool, error) {
	rows, err := d.db.Query(`SELECT id, parent_id, author, body, score, upvotes,
		downvotes, created_at, fetched_at
		FROM comments WHERE post_id = ? ORDER BY position`, postID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var records []thread.CommentRecord
	var oldest int64
	for rows.Next() {
		var rec thread.CommentRecord
		var parent, author, body sql.NullString
		var createdAt string
		var fetchedAt int64

		if err := rows.Scan(&rec.ID, &parent, &author, &body, &rec.Score,
			&rec.UpvoteCount, &rec.DownvoteCount, &createdAt, &fetchedAt); err != nil {
			return nil, false, err
		}
		rec.ParentID = parent.String
		rec.Author = author.String
		rec.Body = body.String
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			rec.CreatedAt = t
		}
		if oldest == 0 || fetchedAt < oldest {
			oldest = fetchedAt
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, false, err
	}
	if records == nil {
		return nil, false, nil
	}

	isFresh := time.Since(time.Unix(oldest, 0)) < ttl
	return records, isFresh, nil
}

// PutComments replaces a post's cached comment list, preserving input
// order for later retrieval.
func (d *DB) PutComments(postID string, records []thread.CommentRecord) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM comments WHERE post_id = ?`, postID); err != nil {
		return fmt.Errorf("clearing comments for %s: %w", postID, err)
	}

	now := time.Now().Unix()
	stmt, err := tx.Prepare(`INSERT INTO comments
		(id, post_id, parent_id, author, body, score, upvotes, downvotes, created_at, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.Exec(rec.ID, postID, nullStr(rec.ParentID), nullStr(rec.Author),
			nullStr(rec.Body), rec.Score, rec.UpvoteCount, rec.DownvoteCount,
			rec.CreatedAt.UTC().Format(time.RFC3339), i, now)
		if err != nil {
			return fmt.Errorf("inserting comment %s: %w", rec.ID, err)
		}
	}
	return tx.Commit()
}

func nullStr(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
