package tree

import (
	"fmt"
	"iter"
	"slices"
)

// ChildList is a mutable, ordered, index-addressable view over a branch's
// children. Every mutation keeps parent back-references synchronized:
// removed nodes lose their back-reference, inserted nodes are detached
// from any previous parent and repointed at the owner. Failed mutations
// leave the list untouched.
type ChildList[T any] struct {
	owner *Branch[T]
}

// ChildList returns the mutable view over b's children. The view is cheap
// and always reflects the branch's current state.
func (b *Branch[T]) ChildList() ChildList[T] {
	return ChildList[T]{owner: b}
}

func (c ChildList[T]) Len() int {
	return len(c.owner.nodes)
}

// At returns the child at index i. Panics when i is out of range, like a
// slice access.
func (c ChildList[T]) At(i int) Node[T] {
	return c.owner.nodes[i]
}

// Index returns the position of node in the list, or -1.
func (c ChildList[T]) Index(node Node[T]) int {
	return slices.Index(c.owner.nodes, node)
}

// Slice returns a copy of the child sequence.
func (c ChildList[T]) Slice() []Node[T] {
	return slices.Clone(c.owner.nodes)
}

func (c ChildList[T]) All() iter.Seq[Node[T]] {
	return c.owner.Children()
}

// coerce validates value for insertion under the owner: nodes pass through
// after identity and cycle checks, raw T values become new leaves.
func (c ChildList[T]) coerce(value any) (Node[T], error) {
	node, err := asChild[T](value)
	if err != nil {
		return nil, err
	}
	if slices.Contains(c.owner.nodes, node) {
		return nil, fmt.Errorf("%w: %v", ErrDuplicateChild, node)
	}
	var owner Node[T] = c.owner
	if node == owner || IsAncestorOf(node, owner) {
		return nil, fmt.Errorf("%w: %v", ErrCycle, node)
	}
	return node, nil
}

// adopt transfers node under the owner, detaching it from any previous
// parent first.
func (c ChildList[T]) adopt(node Node[T]) {
	detachNode(node)
	node.attach(c.owner)
}

// Set replaces the child at index i. The replaced node's back-reference is
// cleared.
func (c ChildList[T]) Set(i int, value any) error {
	if i < 0 || i >= len(c.owner.nodes) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	node, err := c.coerce(value)
	if err != nil {
		return err
	}
	c.owner.nodes[i].attach(nil)
	c.adopt(node)
	c.owner.nodes[i] = node
	return nil
}

// SetRange replaces the children in [i, j) with values, like a slice
// assignment. All values are validated before anything is mutated.
func (c ChildList[T]) SetRange(i, j int, values []any) error {
	if i < 0 || j < i || j > len(c.owner.nodes) {
		return fmt.Errorf("%w: [%d:%d]", ErrIndex, i, j)
	}
	incoming := make([]Node[T], 0, len(values))
	for _, value := range values {
		node, err := c.coerce(value)
		if err != nil {
			return err
		}
		if slices.Contains(incoming, node) {
			return fmt.Errorf("%w: %v", ErrDuplicateChild, node)
		}
		incoming = append(incoming, node)
	}
	for _, old := range c.owner.nodes[i:j] {
		old.attach(nil)
	}
	for _, node := range incoming {
		c.adopt(node)
	}
	c.owner.nodes = slices.Concat(c.owner.nodes[:i:i], incoming, c.owner.nodes[j:])
	return nil
}

// Insert places value at index i without disturbing other positions.
func (c ChildList[T]) Insert(i int, value any) error {
	if i < 0 || i > len(c.owner.nodes) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	node, err := c.coerce(value)
	if err != nil {
		return err
	}
	c.adopt(node)
	c.owner.nodes = slices.Insert(c.owner.nodes, i, node)
	return nil
}

func (c ChildList[T]) Append(value any) error {
	return c.Insert(len(c.owner.nodes), value)
}

// Delete removes the child at index i and clears its back-reference.
func (c ChildList[T]) Delete(i int) error {
	if i < 0 || i >= len(c.owner.nodes) {
		return fmt.Errorf("%w: %d", ErrIndex, i)
	}
	c.owner.nodes[i].attach(nil)
	c.owner.nodes = slices.Delete(c.owner.nodes, i, i+1)
	return nil
}

// DeleteRange removes the children in [i, j), clearing the back-reference
// of every removed node.
func (c ChildList[T]) DeleteRange(i, j int) error {
	if i < 0 || j < i || j > len(c.owner.nodes) {
		return fmt.Errorf("%w: [%d:%d]", ErrIndex, i, j)
	}
	for _, node := range c.owner.nodes[i:j] {
		node.attach(nil)
	}
	c.owner.nodes = slices.Delete(c.owner.nodes, i, j)
	return nil
}

// Replace swaps the whole child sequence for values. Incoming nodes must
// be unparented; on any failure the previous contents and their
// back-references are left exactly as they were.
func (c ChildList[T]) Replace(values ...any) error {
	incoming := make([]Node[T], 0, len(values))
	for _, value := range values {
		node, err := asChild[T](value)
		if err != nil {
			return err
		}
		if node.Parent() != nil {
			return fmt.Errorf("%w: %v", ErrAttached, node)
		}
		if slices.Contains(incoming, node) {
			return fmt.Errorf("%w: %v", ErrDuplicateChild, node)
		}
		var owner Node[T] = c.owner
		if node == owner || IsAncestorOf(node, owner) {
			return fmt.Errorf("%w: %v", ErrCycle, node)
		}
		incoming = append(incoming, node)
	}
	for _, old := range c.owner.nodes {
		old.attach(nil)
	}
	for _, node := range incoming {
		node.attach(c.owner)
	}
	c.owner.nodes = incoming
	return nil
}

// Clear detaches every child.
func (c ChildList[T]) Clear() {
	for _, node := range c.owner.nodes {
		node.attach(nil)
	}
	c.owner.nodes = nil
}
