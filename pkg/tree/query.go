package tree

import (
	"fmt"
	"slices"

	"github.com/mholzen/treekit/pkg/seq"
)

// Predicate selects nodes in queries. Unlike WithKeep, a failing predicate
// only drops the node from the result; its subtree is still searched.
type Predicate[T any] func(Node[T]) bool

// FindAll walks the subtree of n (pre-order unless WithOrder says
// otherwise), keeps the nodes matching pred (nil matches everything), and
// returns them in traversal order. Fails with ErrCardinality when the
// count falls outside the [WithMinCount, WithMaxCount] bounds.
func FindAll[T any](n Node[T], pred Predicate[T], opts ...Option[T]) ([]Node[T], error) {
	cfg := newConfig(opts)
	nodes, err := Walk(n, cfg.order, opts...)
	if err != nil {
		return nil, err
	}
	if pred != nil {
		nodes = seq.Filter(pred, nodes)
	}
	found := slices.Collect(nodes)
	if len(found) < cfg.minCount {
		return nil, fmt.Errorf("%w: expected at least %d, found %d", ErrCardinality, cfg.minCount, len(found))
	}
	if cfg.maxCount >= 0 && len(found) > cfg.maxCount {
		return nil, fmt.Errorf("%w: expected at most %d, found %d", ErrCardinality, cfg.maxCount, len(found))
	}
	return found, nil
}

// Find returns the first node matching pred in traversal order, or
// ErrNoMatch if there is none. The traversal stops at the first match.
func Find[T any](n Node[T], pred Predicate[T], opts ...Option[T]) (Node[T], error) {
	cfg := newConfig(opts)
	nodes, err := Walk(n, cfg.order, opts...)
	if err != nil {
		return nil, err
	}
	if pred != nil {
		nodes = seq.Filter(pred, nodes)
	}
	if match, ok := seq.First(nodes); ok {
		return match, nil
	}
	return nil, ErrNoMatch
}

// FindOr is Find with a fallback instead of an error.
func FindOr[T any](n Node[T], pred Predicate[T], fallback Node[T], opts ...Option[T]) Node[T] {
	match, err := Find(n, pred, opts...)
	if err != nil {
		return fallback
	}
	return match
}
