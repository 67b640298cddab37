// Package tree implements a generic in-memory tree of leaf and branch
// nodes with ordered children, parent back-references, lazy traversals,
// queries, and text rendering.
package tree

import (
	"fmt"
	"iter"
)

// Node is the polymorphic tree unit: either a *Leaf or a *Branch. The
// interface is sealed; outside implementations are not supported.
type Node[T any] interface {
	Value() T
	SetValue(value T)

	// Meta returns the node's metadata bag, allocating it on first use.
	Meta() Meta

	// Parent returns the owning branch, or nil for a root.
	Parent() *Branch[T]

	// SetParent moves the node under parent, detaching it from any current
	// parent first. A nil parent is equivalent to Detach. Fails with
	// ErrCycle when parent is the node itself or one of its ancestors or
	// descendants.
	SetParent(parent *Branch[T]) error

	// Detach removes the node from its parent's children and clears the
	// back-reference. Idempotent; returns the node for chaining.
	Detach() Node[T]

	IsLeaf() bool
	IsRoot() bool

	// Children iterates over the direct children in order. Empty for leaves.
	Children() iter.Seq[Node[T]]

	// Equal reports structural equality: same kind, same value, same
	// children, same metadata. Parent links are ignored.
	Equal(other Node[T]) bool

	childNodes() []Node[T]
	attach(parent *Branch[T])
}

// base carries the state shared by both node kinds.
type base[T any] struct {
	value  T
	meta   Meta
	parent *Branch[T]
}

func (b *base[T]) Value() T { return b.value }

func (b *base[T]) SetValue(value T) { b.value = value }

func (b *base[T]) Parent() *Branch[T] { return b.parent }

func (b *base[T]) IsRoot() bool { return b.parent == nil }

func (b *base[T]) Meta() Meta {
	if b.meta == nil {
		b.meta = Meta{}
	}
	return b.meta
}

func (b *base[T]) attach(parent *Branch[T]) { b.parent = parent }

// NodeOption configures a node at construction time.
type NodeOption[T any] func(*base[T])

// WithMeta attaches a single metadata entry.
func WithMeta[T any](key string, value any) NodeOption[T] {
	return func(b *base[T]) {
		if b.meta == nil {
			b.meta = Meta{}
		}
		b.meta[key] = value
	}
}

// WithMetaMap attaches all entries of m.
func WithMetaMap[T any](m Meta) NodeOption[T] {
	return func(b *base[T]) {
		if b.meta == nil {
			b.meta = Meta{}
		}
		for key, value := range m {
			b.meta[key] = value
		}
	}
}

// WithValue sets the node payload. Mostly useful for branches, whose
// payload otherwise defaults to the zero value.
func WithValue[T any](value T) NodeOption[T] {
	return func(b *base[T]) { b.value = value }
}

func detachNode[T any](n Node[T]) {
	if parent := n.Parent(); parent != nil {
		parent.removeChild(n)
		n.attach(nil)
	}
}

func reparent[T any](n Node[T], parent *Branch[T]) error {
	if parent == n.Parent() {
		return nil
	}
	if parent == nil {
		detachNode(n)
		return nil
	}
	var target Node[T] = parent
	if target == n || IsAncestorOf(n, target) || IsAncestorOf(target, n) {
		return fmt.Errorf("%w: cannot set parent to %v", ErrCycle, parent)
	}
	detachNode(n)
	return parent.ChildList().Append(n)
}

// asChild passes nodes through and wraps raw T values into new leaves.
func asChild[T any](value any) (Node[T], error) {
	switch child := value.(type) {
	case Node[T]:
		if child == nil {
			return nil, fmt.Errorf("%w: nil node", ErrChildValue)
		}
		return child, nil
	case T:
		return NewLeaf(child), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrChildValue, value)
	}
}

// Root returns the base of the tree containing n.
func Root[T any](n Node[T]) Node[T] {
	root := n
	for root.Parent() != nil {
		root = Node[T](root.Parent())
	}
	return root
}

// Path returns the nodes from the root down to n, inclusive.
func Path[T any](n Node[T]) []Node[T] {
	var reversed []Node[T]
	for cur := n; cur != nil; {
		reversed = append(reversed, cur)
		if parent := cur.Parent(); parent != nil {
			cur = Node[T](parent)
		} else {
			cur = nil
		}
	}
	path := make([]Node[T], len(reversed))
	for i, node := range reversed {
		path[len(path)-1-i] = node
	}
	return path
}

// Ancestors returns the path from the root to n's parent.
func Ancestors[T any](n Node[T]) []Node[T] {
	path := Path(n)
	return path[:len(path)-1]
}

// Depth is the number of edges between n and its root.
func Depth[T any](n Node[T]) int {
	depth := 0
	for parent := n.Parent(); parent != nil; parent = parent.Parent() {
		depth++
	}
	return depth
}

// Height is the number of edges on the longest downward path from n to a
// leaf. Leaves and childless branches have height 0.
func Height[T any](n Node[T]) int {
	height := 0
	for _, child := range n.childNodes() {
		if h := Height(child) + 1; h > height {
			height = h
		}
	}
	return height
}

// IsAncestorOf reports whether n appears on the ancestor chain of other.
func IsAncestorOf[T any](n, other Node[T]) bool {
	branch, ok := n.(*Branch[T])
	if !ok {
		return false
	}
	for parent := other.Parent(); parent != nil; parent = parent.Parent() {
		if parent == branch {
			return true
		}
	}
	return false
}

// Siblings returns the other children of n's parent, in order.
func Siblings[T any](n Node[T]) []Node[T] {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	var siblings []Node[T]
	for _, child := range parent.nodes {
		if child != n {
			siblings = append(siblings, child)
		}
	}
	return siblings
}

func sibling[T any](n Node[T], delta int) Node[T] {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	for i, child := range parent.nodes {
		if child == n {
			j := i + delta
			if j < 0 || j >= len(parent.nodes) {
				return nil
			}
			return parent.nodes[j]
		}
	}
	return nil
}

// LeftSibling returns the child immediately before n, or nil.
func LeftSibling[T any](n Node[T]) Node[T] { return sibling(n, -1) }

// RightSibling returns the child immediately after n, or nil.
func RightSibling[T any](n Node[T]) Node[T] { return sibling(n, +1) }

// Descendants returns every node strictly below n, in pre-order.
func Descendants[T any](n Node[T]) []Node[T] {
	var result []Node[T]
	for _, child := range n.childNodes() {
		result = append(result, child)
		result = append(result, Descendants(child)...)
	}
	return result
}

// Prune detaches everything deeper than depth levels below n. Depth 0
// removes all of n's children; a negative depth is a no-op.
func Prune[T any](n Node[T], depth int) {
	if depth < 0 {
		return
	}
	if depth == 0 {
		if branch, ok := n.(*Branch[T]); ok {
			branch.ChildList().Clear()
		}
		return
	}
	for _, child := range n.childNodes() {
		Prune(child, depth-1)
	}
}

// Leaves returns the leaf nodes of the subtree rooted at n, in pre-order.
func Leaves[T any](n Node[T]) []Node[T] {
	if n.IsLeaf() {
		return []Node[T]{n}
	}
	var result []Node[T]
	for _, child := range n.childNodes() {
		result = append(result, Leaves(child)...)
	}
	return result
}
