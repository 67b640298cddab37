// Package treeyaml converts between YAML documents and trees: mappings
// become branches labeled with their key, sequences splice their elements
// in as siblings, and scalars become leaves.
package treeyaml

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/mholzen/treekit/pkg/tree"
)

// Decode parses a YAML document into a tree. A document with a single top
// node becomes that node; anything else is wrapped under an unlabeled
// root branch.
func Decode(data []byte) (tree.Node[string], error) {
	var doc any
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("cannot parse YAML: %w", err)
	}
	nodes, err := nodesFor(doc)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return branchOf("", nodes)
}

func DecodeFile(filename string) (tree.Node[string], error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", filename, err)
	}
	return Decode(data)
}

// nodesFor expands a decoded YAML value into the nodes it contributes to
// its parent.
func nodesFor(value any) ([]tree.Node[string], error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case yaml.MapSlice:
		var nodes []tree.Node[string]
		for _, item := range v {
			children, err := nodesFor(item.Value)
			if err != nil {
				return nil, err
			}
			branch, err := branchOf(fmt.Sprint(item.Key), children)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, branch)
		}
		return nodes, nil
	case []any:
		var nodes []tree.Node[string]
		for _, elem := range v {
			children, err := nodesFor(elem)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, children...)
		}
		return nodes, nil
	default:
		return []tree.Node[string]{tree.NewLeaf(fmt.Sprint(v))}, nil
	}
}

func branchOf(label string, children []tree.Node[string]) (*tree.Branch[string], error) {
	values := make([]any, len(children))
	for i, child := range children {
		values[i] = child
	}
	return tree.NewBranch[string](values, tree.WithValue[string](label))
}

// Encode serializes a tree back to YAML. Labeled branches become mapping
// entries, unlabeled branches become sequences, leaves become scalars.
func Encode(n tree.Node[string]) ([]byte, error) {
	data, err := yaml.Marshal(yamlFor(n))
	if err != nil {
		return nil, fmt.Errorf("cannot serialize tree: %w", err)
	}
	return data, nil
}

func yamlFor(n tree.Node[string]) any {
	if n.IsLeaf() {
		return n.Value()
	}
	var children []any
	for child := range n.Children() {
		children = append(children, yamlFor(child))
	}
	var content any = children
	if len(children) == 1 {
		content = children[0]
	}
	if n.Value() == "" {
		return content
	}
	return yaml.MapSlice{{Key: n.Value(), Value: content}}
}
