// Package seq provides lazy, restartable combinators over iter.Seq.
// Sequences are pull-based; nothing is computed until ranged over, and
// every range is an independent pass.
package seq

import "iter"

// Of returns a sequence over the given values.
func Of[V any](values ...V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func Empty[V any]() iter.Seq[V] {
	return func(yield func(V) bool) {}
}

// Filter yields the elements of s for which pred is true.
func Filter[V any](pred func(V) bool, s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Remove yields the elements of s for which pred is false.
func Remove[V any](pred func(V) bool, s iter.Seq[V]) iter.Seq[V] {
	return Filter(func(v V) bool { return !pred(v) }, s)
}

// Take yields the first n elements of s.
func Take[V any](n int, s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range s {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	}
}

// TakeWhile yields elements until pred first fails.
func TakeWhile[V any](pred func(V) bool, s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range s {
			if !pred(v) || !yield(v) {
				return
			}
		}
	}
}

// Drop skips the first n elements of s.
func Drop[V any](n int, s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		skipped := 0
		for v := range s {
			if skipped < n {
				skipped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// DropWhile skips elements until pred first fails, then yields the rest.
func DropWhile[V any](pred func(V) bool, s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		dropping := true
		for v := range s {
			if dropping {
				if pred(v) {
					continue
				}
				dropping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Unique yields each distinct element once, in first-seen order.
func Unique[V comparable](s iter.Seq[V]) iter.Seq[V] {
	return UniqueBy(func(v V) V { return v }, s)
}

// UniqueBy yields elements whose key has not been seen before.
func UniqueBy[V any, K comparable](key func(V) K, s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		seen := make(map[K]struct{})
		for v := range s {
			k := key(v)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			if !yield(v) {
				return
			}
		}
	}
}

// Dedupe collapses runs of consecutive equal elements to one.
func Dedupe[V comparable](s iter.Seq[V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		var prev V
		first := true
		for v := range s {
			if !first && v == prev {
				continue
			}
			first = false
			prev = v
			if !yield(v) {
				return
			}
		}
	}
}

// First returns the first element of s, if any.
func First[V any](s iter.Seq[V]) (V, bool) {
	for v := range s {
		return v, true
	}
	var zero V
	return zero, false
}

// Enumerate pairs each element with its position.
func Enumerate[V any](s iter.Seq[V]) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		i := 0
		for v := range s {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
