package tree

import "errors"

var (
	// ErrCycle is returned when a mutation would make a node its own ancestor.
	ErrCycle = errors.New("operation would create a cycle")

	// ErrAttached is returned when a node that already has a parent is used
	// where an unparented node is required.
	ErrAttached = errors.New("node already has a parent")

	// ErrDuplicateChild is returned when the exact same node instance is
	// already present in the target child list.
	ErrDuplicateChild = errors.New("node is already a child")

	// ErrChildValue is returned when a value can neither pass through as a
	// node nor be wrapped into a leaf.
	ErrChildValue = errors.New("value cannot be used as a child")

	ErrUnknownOrder = errors.New("unknown traversal order")
	ErrUnknownStyle = errors.New("unknown render style")

	// ErrCardinality is returned by FindAll when the match count falls
	// outside the requested bounds.
	ErrCardinality = errors.New("match count out of bounds")

	// ErrNoMatch is returned by Find when no node satisfies the predicate.
	ErrNoMatch = errors.New("no matching node")

	ErrIndex = errors.New("index out of range")
)
