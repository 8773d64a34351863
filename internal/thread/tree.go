package thread

// TreeNode is a comment with its replies resolved into children. Children
// keep input order among siblings until SortTree reorders them.
type TreeNode struct {
	CommentRecord
	Children []*TreeNode
}

// BuildTree assembles flat parent-pointer records into a forest of root
// nodes. Roots keep first-seen input order; so do siblings under a shared
// parent. A record whose parent ID resolves to no record in the input is
// promoted to a root rather than dropped. Nil or empty input yields nil.
//
// Cyclic parent chains are malformed input: every record in such a chain
// has a resolvable parent, so none becomes a root and the whole chain is
// unreachable from the result.
func BuildTree(records []CommentRecord) []*TreeNode {
	if len(records) == 0 {
		return nil
	}

	byID := make(map[string]*TreeNode, len(records))
	nodes := make([]*TreeNode, 0, len(records))
	for _, rec := range records {
		n := &TreeNode{CommentRecord: rec}
		byID[rec.ID] = n
		nodes = append(nodes, n)
	}

	var roots []*TreeNode
	for _, n := range nodes {
		if n.ParentID != "" {
			if parent, ok := byID[n.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}
	return roots
}

// descendantCount returns the total number of nodes below n, at any depth.
func descendantCount(n *TreeNode) int {
	count := 0
	for _, child := range n.Children {
		count += 1 + descendantCount(child)
	}
	return count
}
