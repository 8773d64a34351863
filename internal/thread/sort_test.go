package thread

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voted(id, parent string, score, up, down int, created time.Time) CommentRecord {
	return CommentRecord{
		ID:            id,
		ParentID:      parent,
		Score:         score,
		UpvoteCount:   up,
		DownvoteCount: down,
		CreatedAt:     created,
	}
}

func ids(nodes []*TreeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func sortFixture() []*TreeNode {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return BuildTree([]CommentRecord{
		voted("a", "", 5, 8, 3, base),                      // net 5, controversy 4.125
		voted("b", "", 20, 25, 5, base.Add(2*time.Hour)),   // net 20, controversy 6
		voted("c", "", 10, 50, 45, base.Add(1*time.Hour)),  // net 5, controversy 85.5
		voted("a1", "a", 1, 2, 1, base.Add(3*time.Hour)),   // net 1
		voted("a2", "a", 9, 10, 0, base.Add(30*time.Minute)), // net 10
	})
}

func TestSortTreeBest(t *testing.T) {
	sorted, err := SortTree(sortFixture(), SortBest)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
	// Children are reordered recursively by the same comparator.
	assert.Equal(t, []string{"a2", "a1"}, ids(sorted[2].Children))
}

func TestSortTreeNew(t *testing.T) {
	sorted, err := SortTree(sortFixture(), SortNew)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(sorted))
	assert.Equal(t, []string{"a1", "a2"}, ids(sorted[2].Children))
}

func TestSortTreeTop(t *testing.T) {
	sorted, err := SortTree(sortFixture(), SortTop)
	require.NoError(t, err)
	// a and c tie on net votes; ties keep prior order.
	assert.Equal(t, []string{"b", "a", "c"}, ids(sorted))
	assert.Equal(t, []string{"a2", "a1"}, ids(sorted[1].Children))
}

func TestSortTreeControversial(t *testing.T) {
	sorted, err := SortTree(sortFixture(), SortControversial)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, ids(sorted))
}

func TestSortTreeStableOnTies(t *testing.T) {
	base := time.Now()
	roots := BuildTree([]CommentRecord{
		voted("x", "", 3, 0, 0, base),
		voted("y", "", 3, 0, 0, base),
		voted("z", "", 3, 0, 0, base),
	})

	sorted, err := SortTree(roots, SortBest)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, ids(sorted))
}

func TestSortTreeUnknownMode(t *testing.T) {
	_, err := SortTree(sortFixture(), SortMode("spicy"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownSortMode)
}

func TestSortTreeDoesNotMutateInput(t *testing.T) {
	roots := sortFixture()

	_, err := SortTree(roots, SortBest)
	require.NoError(t, err)

	// Original forest keeps input order at every level.
	assert.Equal(t, []string{"a", "b", "c"}, ids(roots))
	assert.Equal(t, []string{"a1", "a2"}, ids(roots[0].Children))
}

func TestSortTreeEmpty(t *testing.T) {
	sorted, err := SortTree(nil, SortNew)
	require.NoError(t, err)
	assert.Empty(t, sorted)
}
