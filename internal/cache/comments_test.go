package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadlet/threadlet/internal/api"
	"github.com/threadlet/threadlet/internal/thread"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestCommentsRoundTrip(t *testing.T) {
	db := testDB(t)
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	records := []thread.CommentRecord{
		{ID: "c1", Author: "maia", Body: "first", Score: 5, UpvoteCount: 6, DownvoteCount: 1, CreatedAt: created},
		{ID: "c2", ParentID: "c1", Author: "remy", Body: "reply", Score: 2, UpvoteCount: 2, CreatedAt: created.Add(5 * time.Minute)},
	}

	require.NoError(t, db.PutComments("p42", records))

	got, fresh, err := db.GetComments("p42", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, records, got)
}

func TestCommentsMiss(t *testing.T) {
	db := testDB(t)

	got, fresh, err := db.GetComments("nothing", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, fresh)
}

func TestCommentsStaleAfterTTL(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.PutComments("p1", []thread.CommentRecord{
		{ID: "c1", Body: "x", CreatedAt: time.Now().UTC().Truncate(time.Second)},
	}))

	_, fresh, err := db.GetComments("p1", -time.Second)
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestCommentsReplaceOnPut(t *testing.T) {
	db := testDB(t)
	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, db.PutComments("p1", []thread.CommentRecord{
		{ID: "old", Body: "old", CreatedAt: created},
	}))
	require.NoError(t, db.PutComments("p1", []thread.CommentRecord{
		{ID: "new1", Body: "a", CreatedAt: created},
		{ID: "new2", Body: "b", CreatedAt: created},
	}))

	got, _, err := db.GetComments("p1", time.Minute)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "new1", got[0].ID)
	assert.Equal(t, "new2", got[1].ID)
}

func TestPostRoundTrip(t *testing.T) {
	db := testDB(t)
	post := &api.Post{
		ID:           "p42",
		Title:        "Announcing things",
		Author:       "maia",
		Score:        17,
		CommentCount: 3,
		CreatedAt:    time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
	}

	require.NoError(t, db.PutPost(post))

	got, fresh, err := db.GetPost("p42", time.Minute)
	require.NoError(t, err)
	assert.True(t, fresh)
	assert.Equal(t, post, got)
}

func TestPostMiss(t *testing.T) {
	db := testDB(t)

	got, _, err := db.GetPost("absent", time.Minute)
	require.NoError(t, err)
	assert.Nil(t, got)
}
