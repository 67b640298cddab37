package tree

// Clone deep-copies the subtree rooted at n. Structure and metadata are
// copied; values are copied by assignment. The copy is a root.
func Clone[T any](n Node[T]) Node[T] {
	switch node := n.(type) {
	case *Leaf[T]:
		leaf := NewLeaf(node.value)
		leaf.meta = node.meta.Clone()
		return leaf
	case *Branch[T]:
		branch := &Branch[T]{}
		branch.value = node.value
		branch.meta = node.meta.Clone()
		for _, child := range node.nodes {
			copied := Clone(child)
			copied.attach(branch)
			branch.nodes = append(branch.nodes, copied)
		}
		return branch
	default:
		return nil
	}
}
