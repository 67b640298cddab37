// Package search matches tree node labels against substring or regexp
// patterns, with optional Unicode case folding, and highlights matches.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mholzen/treekit/pkg/tree"
)

// Position marks a match inside a label, in byte offsets.
type Position struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Options control how a pattern is interpreted.
type Options struct {
	Regexp     bool
	IgnoreCase bool
}

// Matcher is a compiled pattern.
type Matcher struct {
	pattern string
	re      *regexp.Regexp
	fold    bool
}

// NewMatcher compiles pattern. With Regexp set the pattern is a regular
// expression; otherwise it is a literal substring. IgnoreCase folds case
// per Unicode rules.
func NewMatcher(pattern string, opts Options) (*Matcher, error) {
	m := &Matcher{pattern: pattern, fold: opts.IgnoreCase}
	if opts.Regexp {
		if opts.IgnoreCase {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		m.re = re
	} else if opts.IgnoreCase {
		m.pattern = cases.Fold().String(pattern)
	}
	return m, nil
}

func (m *Matcher) Matches(text string) bool {
	return len(m.Find(text)) > 0
}

// Find returns the positions of all matches in text.
func (m *Matcher) Find(text string) []Position {
	var positions []Position

	if m.re != nil {
		for _, match := range m.re.FindAllStringIndex(text, -1) {
			positions = append(positions, Position{Start: match[0], End: match[1]})
		}
		return positions
	}

	if m.pattern == "" {
		return nil
	}

	haystack := text
	if m.fold {
		haystack = cases.Fold().String(text)
	}

	start := 0
	for {
		index := strings.Index(haystack[start:], m.pattern)
		if index == -1 {
			break
		}
		abs := start + index
		positions = append(positions, Position{Start: abs, End: abs + len(m.pattern)})
		start = abs + len(m.pattern)
	}
	return positions
}

// Highlight wraps every matched range of text in **.
func Highlight(text string, positions []Position) string {
	if len(positions) == 0 {
		return text
	}
	var sb strings.Builder
	lastEnd := 0
	for _, pos := range positions {
		if pos.Start > len(text) {
			break
		}
		end := min(pos.End, len(text))
		sb.WriteString(text[lastEnd:pos.Start])
		sb.WriteString("**")
		sb.WriteString(text[pos.Start:end])
		sb.WriteString("**")
		lastEnd = end
	}
	sb.WriteString(text[lastEnd:])
	return sb.String()
}

// Result is one matching node.
type Result[T any] struct {
	Node        tree.Node[T] `json:"-"`
	Path        string       `json:"path"`
	Label       string       `json:"label"`
	Highlighted string       `json:"highlighted"`
	Positions   []Position   `json:"positions"`
}

// FindNodes walks the subtree of root and returns every node whose label
// matches. A nil label function falls back to the default %v rendering.
// Traversal options (order, depth, keep) pass through to the tree query
// layer.
func FindNodes[T any](root tree.Node[T], m *Matcher, label tree.Renderer[T], opts ...tree.Option[T]) ([]Result[T], error) {
	if label == nil {
		label = tree.DefaultRenderer[T]
	}
	matched, err := tree.FindAll(root, func(n tree.Node[T]) bool {
		return m.Matches(label(n))
	}, opts...)
	if err != nil {
		return nil, err
	}
	results := make([]Result[T], 0, len(matched))
	for _, n := range matched {
		text := label(n)
		positions := m.Find(text)
		results = append(results, Result[T]{
			Node:        n,
			Path:        LabelPath(n, label),
			Label:       text,
			Highlighted: Highlight(text, positions),
			Positions:   positions,
		})
	}
	return results, nil
}

// LabelPath joins the labels from the root down to n with slashes.
func LabelPath[T any](n tree.Node[T], label tree.Renderer[T]) string {
	if label == nil {
		label = tree.DefaultRenderer[T]
	}
	var parts []string
	for _, node := range tree.Path(n) {
		parts = append(parts, label(node))
	}
	return "/" + strings.Join(parts, "/")
}
