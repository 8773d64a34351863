package thread

// MaxVisualDepth caps indentation so deep threads stay readable. Depth
// itself is unbounded; renderers show a depth badge past this point.
const MaxVisualDepth = 5

// LineState describes how the thread-connector segment in one indentation
// column should be drawn at a given row.
type LineState string

const (
	// LineStart begins a connector at this row, extending down to the
	// node's own visible children.
	LineStart LineState = "start"
	// LineEnd closes a connector arriving from above: this row is the last
	// visible row of that ancestor's subtree.
	LineEnd LineState = "end"
	// LineFull continues a connector straight through this row.
	LineFull LineState = "full"
	// LineStub is a short isolated mark for a node with no visible
	// children. Siblings never connect laterally through a stub.
	LineStub LineState = "stub"
)

// FlatNode is one display row of a flattened thread.
//
// A node at depth D owns D indentation columns. Column j (0-based,
// j < D-1) carries the thread line of the node's ancestor at depth j+1;
// column D-1 is the node's own. Roots have no columns at all.
type FlatNode struct {
	Node *TreeNode

	// Depth is the tree level, root = 0, unbounded.
	Depth int
	// VisualDepth is Depth capped at MaxVisualDepth for indentation.
	VisualDepth int

	// ActiveLines has one entry per ancestor column: true while that
	// ancestor's subtree continues below this row, so its connector must
	// keep running. Empty for roots and depth-1 nodes.
	ActiveLines []bool
	// LineStates has one entry per column, ancestor columns first, the
	// node's own column last. For ancestor columns it mirrors ActiveLines
	// (full while active, end on the ancestor's last row).
	LineStates []LineState

	// IsCollapsed marks a node whose descendants are hidden. The node
	// itself still renders.
	IsCollapsed bool
	// CollapsedCount is the total descendant count hidden under a
	// collapsed node, zero otherwise.
	CollapsedCount int
}

// FlattenTree walks the forest pre-order and projects every visible node
// into a FlatNode. A node whose ID is in collapsed renders itself but none
// of its descendants. The forest is not modified; collapsed is read-only
// and may be nil. Traversal follows child order exactly, so sort before
// flattening when ranked order is wanted.
func FlattenTree(roots []*TreeNode, collapsed map[string]bool) []FlatNode {
	var out []FlatNode

	// laterSib[d] records whether the current path node at depth d has a
	// later sibling still to be rendered at its level.
	var laterSib []bool

	var walk func(n *TreeNode, depth int, hasLater bool)
	walk = func(n *TreeNode, depth int, hasLater bool) {
		isCollapsed := collapsed[n.ID]
		visibleKids := !isCollapsed && len(n.Children) > 0
		laterSib = append(laterSib, hasLater)

		fn := FlatNode{
			Node:        n,
			Depth:       depth,
			VisualDepth: min(depth, MaxVisualDepth),
			IsCollapsed: isCollapsed,
		}
		if isCollapsed {
			fn.CollapsedCount = descendantCount(n)
		}

		if depth > 0 {
			fn.LineStates = make([]LineState, depth)
			fn.ActiveLines = make([]bool, depth-1)
			if visibleKids {
				fn.LineStates[depth-1] = LineStart
			} else {
				fn.LineStates[depth-1] = LineStub
			}
			// Ancestor column j stays active while the ancestor at depth
			// j+1 has more visible rows after this one: either this node
			// has visible children, or some path node strictly below that
			// ancestor still has a later sibling.
			active := visibleKids
			for j := depth - 2; j >= 0; j-- {
				active = active || laterSib[j+2]
				if active {
					fn.LineStates[j] = LineFull
					fn.ActiveLines[j] = true
				} else {
					fn.LineStates[j] = LineEnd
				}
			}
		}
		out = append(out, fn)

		if visibleKids {
			for i, child := range n.Children {
				walk(child, depth+1, i < len(n.Children)-1)
			}
		}
		laterSib = laterSib[:len(laterSib)-1]
	}

	for i, root := range roots {
		walk(root, 0, i < len(roots)-1)
	}
	return out
}
