package thread

import (
	"errors"
	"fmt"
	"sort"
)

// SortMode selects the ranking policy for SortTree.
type SortMode string

const (
	SortBest          SortMode = "best"          // score, descending
	SortNew           SortMode = "new"           // newest first
	SortTop           SortMode = "top"           // net votes, descending
	SortControversial SortMode = "controversial" // ControversyScore, descending
)

// ErrUnknownSortMode is returned by SortTree for a mode it does not know.
var ErrUnknownSortMode = errors.New("unknown sort mode")

// Modes lists the supported sort modes in display order.
func Modes() []SortMode {
	return []SortMode{SortBest, SortNew, SortTop, SortControversial}
}

// SortTree returns a copy of the forest with every level reordered under
// the given mode. Ties keep their previous relative order. A parent's
// position is decided by its own metrics; its children are reordered among
// themselves by the same comparator. The input forest is never mutated:
// nodes are cloned with freshly ordered children slices.
func SortTree(roots []*TreeNode, mode SortMode) ([]*TreeNode, error) {
	less, err := comparator(mode)
	if err != nil {
		return nil, err
	}
	return sortLevel(roots, less), nil
}

func sortLevel(nodes []*TreeNode, less func(a, b *TreeNode) bool) []*TreeNode {
	if nodes == nil {
		return nil
	}
	out := make([]*TreeNode, len(nodes))
	for i, n := range nodes {
		clone := *n
		clone.Children = sortLevel(n.Children, less)
		out[i] = &clone
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func comparator(mode SortMode) (func(a, b *TreeNode) bool, error) {
	switch mode {
	case SortBest:
		return func(a, b *TreeNode) bool { return a.Score > b.Score }, nil
	case SortNew:
		return func(a, b *TreeNode) bool { return a.CreatedAt.After(b.CreatedAt) }, nil
	case SortTop:
		return func(a, b *TreeNode) bool {
			return a.UpvoteCount-a.DownvoteCount > b.UpvoteCount-b.DownvoteCount
		}, nil
	case SortControversial:
		return func(a, b *TreeNode) bool {
			return ControversyScore(a.UpvoteCount, a.DownvoteCount) >
				ControversyScore(b.UpvoteCount, b.DownvoteCount)
		}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownSortMode, mode)
}
