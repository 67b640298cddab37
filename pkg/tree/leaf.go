package tree

import (
	"fmt"
	"iter"
	"reflect"
)

// Leaf is the terminal tree unit. Its child list is permanently empty and
// its height is fixed at 0.
type Leaf[T any] struct {
	base[T]
}

func NewLeaf[T any](value T, opts ...NodeOption[T]) *Leaf[T] {
	leaf := &Leaf[T]{}
	leaf.value = value
	for _, opt := range opts {
		opt(&leaf.base)
	}
	return leaf
}

func (l *Leaf[T]) IsLeaf() bool { return true }

func (l *Leaf[T]) Children() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {}
}

func (l *Leaf[T]) childNodes() []Node[T] { return nil }

func (l *Leaf[T]) Detach() Node[T] {
	detachNode[T](l)
	return l
}

func (l *Leaf[T]) SetParent(parent *Branch[T]) error {
	return reparent[T](l, parent)
}

func (l *Leaf[T]) Equal(other Node[T]) bool {
	otherLeaf, ok := other.(*Leaf[T])
	if !ok {
		return false
	}
	return reflect.DeepEqual(l.value, otherLeaf.value) && l.meta.Equal(otherLeaf.meta)
}

func (l *Leaf[T]) String() string {
	return fmt.Sprintf("Leaf(%v)", l.value)
}
