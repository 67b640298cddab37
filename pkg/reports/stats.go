// Package reports summarizes tree structure for the CLI and MCP tools.
package reports

import (
	"fmt"
	"strings"

	"github.com/mholzen/treekit/pkg/tree"
)

// TreeStats describes the shape of a tree.
type TreeStats struct {
	Nodes       int `json:"nodes"`
	Leaves      int `json:"leaves"`
	Branches    int `json:"branches"`
	Height      int `json:"height"`
	Generations int `json:"generations"`
	// WidestGeneration is the size of the largest generation.
	WidestGeneration int `json:"widest_generation"`
}

// Collect walks the subtree of root once per measure and gathers counts.
func Collect[T any](root tree.Node[T]) (TreeStats, error) {
	stats := TreeStats{Height: tree.Height(root)}

	nodes, err := tree.Walk(root, tree.PreOrder)
	if err != nil {
		return TreeStats{}, err
	}
	for n := range nodes {
		stats.Nodes++
		if n.IsLeaf() {
			stats.Leaves++
		} else {
			stats.Branches++
		}
	}

	generations, err := tree.WalkGroups(root, tree.LevelOrder)
	if err != nil {
		return TreeStats{}, err
	}
	for generation := range generations {
		stats.Generations++
		if len(generation) > stats.WidestGeneration {
			stats.WidestGeneration = len(generation)
		}
	}
	return stats, nil
}

func (s TreeStats) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "nodes: %d\n", s.Nodes)
	fmt.Fprintf(&sb, "leaves: %d\n", s.Leaves)
	fmt.Fprintf(&sb, "branches: %d\n", s.Branches)
	fmt.Fprintf(&sb, "height: %d\n", s.Height)
	fmt.Fprintf(&sb, "generations: %d\n", s.Generations)
	fmt.Fprintf(&sb, "widest generation: %d", s.WidestGeneration)
	return sb.String()
}
