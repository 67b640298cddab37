package tree

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Style holds the line-drawing prefixes used when rendering a tree as
// indented text.
type Style struct {
	Vertical string // continuation below a non-last child
	Fork     string // prefix of a non-last child
	End      string // prefix of the last child
}

var (
	ASCII   = Style{Vertical: "|   ", Fork: "|-- ", End: "+-- "}
	Line    = Style{Vertical: "│   ", Fork: "├── ", End: "└── "}
	Rounded = Style{Vertical: "│   ", Fork: "├── ", End: "╰── "}
	Double  = Style{Vertical: "║   ", Fork: "╠══ ", End: "╚══ "}
)

var styleNames = map[string]Style{
	"ascii":   ASCII,
	"line":    Line,
	"rounded": Rounded,
	"double":  Double,
}

// StyleNamed resolves one of the fixed style names: ascii, line, rounded,
// double.
func StyleNamed(name string) (Style, error) {
	style, ok := styleNames[name]
	if !ok {
		return Style{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return style, nil
}

// StyleNames lists the known style names.
func StyleNames() []string {
	return []string{"ascii", "line", "rounded", "double"}
}

// Renderer maps a node to its single-line label.
type Renderer[T any] func(Node[T]) string

// DefaultRenderer formats the node value with %v.
func DefaultRenderer[T any](n Node[T]) string {
	return fmt.Sprintf("%v", n.Value())
}

// Render formats the subtree of n as indented text using the given style.
// A nil renderer falls back to DefaultRenderer.
func Render[T any](n Node[T], style Style, render Renderer[T]) string {
	if render == nil {
		render = DefaultRenderer[T]
	}
	var sb strings.Builder
	sb.WriteString(render(n))
	spacer := strings.Repeat(" ", utf8.RuneCountInString(style.Vertical))
	renderChildren(&sb, n, "", spacer, style, render)
	return sb.String()
}

// RenderNamed is Render with a named style.
func RenderNamed[T any](n Node[T], styleName string, render Renderer[T]) (string, error) {
	style, err := StyleNamed(styleName)
	if err != nil {
		return "", err
	}
	return Render(n, style, render), nil
}

func renderChildren[T any](sb *strings.Builder, n Node[T], prefix, spacer string, style Style, render Renderer[T]) {
	children := n.childNodes()
	for i, child := range children {
		last := i == len(children)-1
		marker := style.Fork
		below := style.Vertical
		if last {
			marker = style.End
			below = spacer
		}
		sb.WriteString("\n")
		sb.WriteString(prefix)
		sb.WriteString(marker)
		sb.WriteString(render(child))
		renderChildren(sb, child, prefix+below, spacer, style, render)
	}
}
