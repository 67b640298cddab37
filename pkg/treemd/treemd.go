// Package treemd converts between markdown nested bullet lists and
// trees. Each bullet is a node; nesting is expressed by two-space
// indentation.
package treemd

import (
	"fmt"
	"strings"

	"github.com/mholzen/treekit/pkg/tree"
)

const indentWidth = 2

// Encode renders the tree as a markdown unordered list. An unlabeled
// root contributes no bullet of its own; its children start at the top
// level.
func Encode(n tree.Node[string]) string {
	var sb strings.Builder
	if n.Value() == "" && !n.IsLeaf() {
		first := true
		for child := range n.Children() {
			if !first {
				sb.WriteString("\n")
			}
			first = false
			encodeNode(&sb, child, 0)
		}
	} else {
		encodeNode(&sb, n, 0)
	}
	sb.WriteString("\n")
	return sb.String()
}

func encodeNode(sb *strings.Builder, n tree.Node[string], level int) {
	sb.WriteString(strings.Repeat(" ", level*indentWidth))
	sb.WriteString("- ")
	sb.WriteString(n.Value())
	for child := range n.Children() {
		sb.WriteString("\n")
		encodeNode(sb, child, level+1)
	}
}

// Decode parses a markdown unordered list into a tree. Bullets with
// nested bullets become branches; the rest become leaves. A document
// with a single top-level bullet becomes that node; anything else is
// wrapped under an unlabeled root. Childless branches do not survive a
// round trip; they come back as leaves.
func Decode(data []byte) (tree.Node[string], error) {
	type parsed struct {
		level int
		text  string
	}

	var items []parsed
	for i, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)
		if indent%indentWidth != 0 {
			return nil, fmt.Errorf("line %d: indentation must be a multiple of %d spaces", i+1, indentWidth)
		}
		text, ok := strings.CutPrefix(trimmed, "- ")
		if !ok {
			return nil, fmt.Errorf("line %d: expected a %q bullet", i+1, "- ")
		}
		items = append(items, parsed{level: indent / indentWidth, text: strings.TrimSpace(text)})
	}

	root, err := tree.NewBranch[string](nil)
	if err != nil {
		return nil, err
	}

	// stack[d] is the most recent branch at depth d
	stack := []*tree.Branch[string]{root}
	for _, item := range items {
		if item.level >= len(stack) {
			return nil, fmt.Errorf("bullet %q skips an indentation level", item.text)
		}
		parent := stack[item.level]
		branch, err := tree.NewBranch[string](nil, tree.WithValue(item.text))
		if err != nil {
			return nil, err
		}
		if err := parent.ChildList().Append(branch); err != nil {
			return nil, err
		}
		stack = append(stack[:item.level+1], branch)
	}

	collapseChildless(root)
	if root.ChildList().Len() == 1 {
		only := root.ChildList().At(0)
		only.Detach()
		return only, nil
	}
	return root, nil
}

// collapseChildless replaces childless branches with leaves, bottom-up.
func collapseChildless(b *tree.Branch[string]) {
	list := b.ChildList()
	for i := 0; i < list.Len(); i++ {
		child, ok := list.At(i).(*tree.Branch[string])
		if !ok {
			continue
		}
		if child.ChildList().Len() == 0 {
			leaf := tree.NewLeaf(child.Value())
			if err := list.Set(i, leaf); err != nil {
				return
			}
			continue
		}
		collapseChildless(child)
	}
}
