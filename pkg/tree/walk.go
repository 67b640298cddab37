package tree

import (
	"fmt"
	"iter"
	"slices"
)

// Order names a traversal rule.
type Order string

const (
	PreOrder   Order = "pre-order"
	PostOrder  Order = "post-order"
	InOrder    Order = "in-order"
	OutOrder   Order = "out-order"
	LevelOrder Order = "level-order"

	// ZigZag is level-order with every other generation reversed. Only
	// valid for WalkGroups.
	ZigZag Order = "zig-zag"
)

type config[T any] struct {
	keep     func(Node[T]) bool
	maxDepth int // -1 means unbounded
	self     bool
	order    Order
	minCount int
	maxCount int // -1 means unbounded
}

func newConfig[T any](opts []Option[T]) config[T] {
	cfg := config[T]{maxDepth: -1, self: true, order: PreOrder, maxCount: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option configures traversals and queries.
type Option[T any] func(*config[T])

// WithKeep sets the inclusion predicate. A node failing the predicate is
// excluded from the output and its subtree is not descended into.
func WithKeep[T any](pred func(Node[T]) bool) Option[T] {
	return func(cfg *config[T]) { cfg.keep = pred }
}

// WithMaxDepth bounds how many levels below the start node a traversal
// descends. Zero yields the start node only; negative means unbounded.
func WithMaxDepth[T any](depth int) Option[T] {
	return func(cfg *config[T]) { cfg.maxDepth = depth }
}

// WithoutSelf excludes the start node from the output.
func WithoutSelf[T any]() Option[T] {
	return func(cfg *config[T]) { cfg.self = false }
}

// WithOrder selects the traversal order for FindAll and Find.
func WithOrder[T any](order Order) Option[T] {
	return func(cfg *config[T]) { cfg.order = order }
}

// WithMinCount sets the minimum acceptable match count for FindAll.
func WithMinCount[T any](n int) Option[T] {
	return func(cfg *config[T]) { cfg.minCount = n }
}

// WithMaxCount sets the maximum acceptable match count for FindAll.
// Negative means unbounded.
func WithMaxCount[T any](n int) Option[T] {
	return func(cfg *config[T]) { cfg.maxCount = n }
}

// Walk returns a lazy sequence visiting the subtree of n in the given
// order. Every call, and every range over the result, is an independent
// pass over the current tree; abandoning a pass early costs nothing.
func Walk[T any](n Node[T], order Order, opts ...Option[T]) (iter.Seq[Node[T]], error) {
	cfg := newConfig(opts)
	var visit func(Node[T], bool, int, func(Node[T]) bool) bool
	switch order {
	case PreOrder:
		visit = cfg.pre
	case PostOrder:
		visit = cfg.post
	case InOrder:
		visit = cfg.in
	case OutOrder:
		visit = cfg.out
	case LevelOrder:
		visit = cfg.level
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	return func(yield func(Node[T]) bool) {
		visit(n, cfg.self, cfg.maxDepth, yield)
	}, nil
}

// WalkGroups returns a lazy sequence of whole generations. Supported
// orders are LevelOrder and ZigZag.
func WalkGroups[T any](n Node[T], order Order, opts ...Option[T]) (iter.Seq[[]Node[T]], error) {
	if order != LevelOrder && order != ZigZag {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, order)
	}
	cfg := newConfig(opts)
	return func(yield func([]Node[T]) bool) {
		emitted := 0
		cfg.levelGroups(n, func(generation []Node[T]) bool {
			if order == ZigZag && emitted%2 == 1 {
				slices.Reverse(generation)
			}
			emitted++
			return yield(generation)
		})
	}, nil
}

func (cfg config[T]) included(n Node[T]) bool {
	return cfg.keep == nil || cfg.keep(n)
}

func (cfg config[T]) keptChildren(n Node[T]) []Node[T] {
	var kept []Node[T]
	for _, child := range n.childNodes() {
		if cfg.included(child) {
			kept = append(kept, child)
		}
	}
	return kept
}

// dec consumes one level of a depth budget; a negative budget is
// unbounded and never changes.
func dec(depth int) int {
	if depth > 0 {
		return depth - 1
	}
	if depth == 0 {
		return 0
	}
	return -1
}

func (cfg config[T]) pre(n Node[T], self bool, depth int, yield func(Node[T]) bool) bool {
	if !cfg.included(n) {
		return true
	}
	if self && !yield(n) {
		return false
	}
	if depth == 0 {
		return true
	}
	for _, child := range n.childNodes() {
		if !cfg.pre(child, true, dec(depth), yield) {
			return false
		}
	}
	return true
}

func (cfg config[T]) post(n Node[T], self bool, depth int, yield func(Node[T]) bool) bool {
	if !cfg.included(n) {
		return true
	}
	if depth != 0 {
		for _, child := range n.childNodes() {
			if !cfg.post(child, true, dec(depth), yield) {
				return false
			}
		}
	}
	if self && !yield(n) {
		return false
	}
	return true
}

// in generalizes binary in-order traversal to arbitrary branching: only
// the first child is treated as the left subtree.
func (cfg config[T]) in(n Node[T], self bool, depth int, yield func(Node[T]) bool) bool {
	if !cfg.included(n) {
		return true
	}
	children := n.childNodes()
	if depth != 0 && len(children) > 0 {
		if !cfg.in(children[0], true, dec(depth), yield) {
			return false
		}
	}
	if self && !yield(n) {
		return false
	}
	if depth != 0 && len(children) > 1 {
		for _, child := range children[1:] {
			if !cfg.in(child, true, dec(depth), yield) {
				return false
			}
		}
	}
	return true
}

// out mirrors in: the last child comes first, then the node, then the
// remaining children in their original order.
func (cfg config[T]) out(n Node[T], self bool, depth int, yield func(Node[T]) bool) bool {
	if !cfg.included(n) {
		return true
	}
	children := n.childNodes()
	if depth != 0 && len(children) > 0 {
		if !cfg.out(children[len(children)-1], true, dec(depth), yield) {
			return false
		}
	}
	if self && !yield(n) {
		return false
	}
	if depth != 0 && len(children) > 1 {
		for _, child := range children[:len(children)-1] {
			if !cfg.out(child, true, dec(depth), yield) {
				return false
			}
		}
	}
	return true
}

func (cfg config[T]) level(n Node[T], self bool, depth int, yield func(Node[T]) bool) bool {
	if !cfg.included(n) {
		return true
	}
	if self && !yield(n) {
		return false
	}
	generation := cfg.keptChildren(n)
	for len(generation) > 0 && depth != 0 {
		for _, node := range generation {
			if !yield(node) {
				return false
			}
		}
		depth = dec(depth)
		var next []Node[T]
		for _, node := range generation {
			next = append(next, cfg.keptChildren(node)...)
		}
		generation = next
	}
	return true
}

func (cfg config[T]) levelGroups(n Node[T], yield func([]Node[T]) bool) bool {
	if !cfg.included(n) {
		return true
	}
	depth := cfg.maxDepth
	if cfg.self && !yield([]Node[T]{n}) {
		return false
	}
	generation := cfg.keptChildren(n)
	for len(generation) > 0 && depth != 0 {
		// yield a copy so callers (and the zig-zag reversal) cannot
		// disturb the ongoing traversal
		if !yield(slices.Clone(generation)) {
			return false
		}
		depth = dec(depth)
		var next []Node[T]
		for _, node := range generation {
			next = append(next, cfg.keptChildren(node)...)
		}
		generation = next
	}
	return true
}
