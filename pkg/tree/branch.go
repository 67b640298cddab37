package tree

import (
	"fmt"
	"iter"
	"reflect"
)

// Branch is the interior tree unit. It owns an ordered sequence of child
// nodes; ownership is exclusive, so a child belongs to at most one branch
// at a time. The payload defaults to the zero value of T and can carry a
// tag or label when set.
type Branch[T any] struct {
	base[T]
	nodes []Node[T]
}

// NewBranch builds a branch from children, which may mix nodes and raw T
// values; raw values are wrapped into leaves. Nodes that already have a
// parent are rejected with ErrAttached, which also catches the same
// instance appearing twice.
func NewBranch[T any](children []any, opts ...NodeOption[T]) (*Branch[T], error) {
	branch := &Branch[T]{}
	for _, opt := range opts {
		opt(&branch.base)
	}
	for _, child := range children {
		node, err := asChild[T](child)
		if err != nil {
			return nil, err
		}
		if node.Parent() != nil {
			return nil, fmt.Errorf("%w: %v", ErrAttached, node)
		}
		node.attach(branch)
		branch.nodes = append(branch.nodes, node)
	}
	return branch, nil
}

// MustBranch is NewBranch with variadic children, panicking on error.
// Intended for building literal trees.
func MustBranch[T any](children ...any) *Branch[T] {
	branch, err := NewBranch[T](children)
	if err != nil {
		panic(err)
	}
	return branch
}

func (b *Branch[T]) IsLeaf() bool { return false }

func (b *Branch[T]) Children() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for _, child := range b.nodes {
			if !yield(child) {
				break
			}
		}
	}
}

func (b *Branch[T]) childNodes() []Node[T] { return b.nodes }

func (b *Branch[T]) Detach() Node[T] {
	detachNode[T](b)
	return b
}

func (b *Branch[T]) SetParent(parent *Branch[T]) error {
	return reparent[T](b, parent)
}

func (b *Branch[T]) Equal(other Node[T]) bool {
	otherBranch, ok := other.(*Branch[T])
	if !ok {
		return false
	}
	if !reflect.DeepEqual(b.value, otherBranch.value) || !b.meta.Equal(otherBranch.meta) {
		return false
	}
	if len(b.nodes) != len(otherBranch.nodes) {
		return false
	}
	for i, child := range b.nodes {
		if !child.Equal(otherBranch.nodes[i]) {
			return false
		}
	}
	return true
}

func (b *Branch[T]) String() string {
	return fmt.Sprintf("Branch(%d children)", len(b.nodes))
}

func (b *Branch[T]) removeChild(child Node[T]) {
	for i, node := range b.nodes {
		if node == child {
			b.nodes = append(b.nodes[:i], b.nodes[i+1:]...)
			return
		}
	}
}
