package treeyaml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mholzen/treekit/pkg/tree"
)

func Test_Decode_Scalar(t *testing.T) {
	root, err := Decode([]byte("hello"))
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, "hello", root.Value())
}

func Test_Decode_Mapping(t *testing.T) {
	root, err := Decode([]byte(`
fruit:
  - apple
  - banana
`))
	require.NoError(t, err)

	branch, ok := root.(*tree.Branch[string])
	require.True(t, ok)
	assert.Equal(t, "fruit", branch.Value())
	require.Equal(t, 2, branch.ChildList().Len())
	assert.Equal(t, "apple", branch.ChildList().At(0).Value())
	assert.Equal(t, "banana", branch.ChildList().At(1).Value())
}

func Test_Decode_PreservesKeyOrder(t *testing.T) {
	root, err := Decode([]byte(`
zebra: 1
apple: 2
mango: 3
`))
	require.NoError(t, err)

	branch, ok := root.(*tree.Branch[string])
	require.True(t, ok)
	// multiple top-level keys get an unlabeled root
	assert.Equal(t, "", branch.Value())

	labels := make([]string, 0)
	for child := range branch.Children() {
		labels = append(labels, child.Value())
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, labels)
}

func Test_Decode_Nested(t *testing.T) {
	root, err := Decode([]byte(`
menu:
  drinks:
    - tea
    - coffee
  food:
    - soup
`))
	require.NoError(t, err)

	drinks, err := tree.Find(root, func(n tree.Node[string]) bool {
		return n.Value() == "drinks"
	})
	require.NoError(t, err)
	assert.False(t, drinks.IsLeaf())
	assert.Equal(t, 2, tree.Depth(drinks)+1)

	leaves := tree.Leaves(root)
	values := make([]string, 0, len(leaves))
	for _, n := range leaves {
		values = append(values, n.Value())
	}
	assert.Equal(t, []string{"tea", "coffee", "soup"}, values)
}

func Test_Decode_SequenceSplicesSiblings(t *testing.T) {
	root, err := Decode([]byte(`
- a
- b:
    - c
- d
`))
	require.NoError(t, err)

	branch, ok := root.(*tree.Branch[string])
	require.True(t, ok)
	assert.Equal(t, "", branch.Value())
	require.Equal(t, 3, branch.ChildList().Len())
	assert.Equal(t, "a", branch.ChildList().At(0).Value())
	assert.Equal(t, "b", branch.ChildList().At(1).Value())
	assert.False(t, branch.ChildList().At(1).IsLeaf())
	assert.Equal(t, "d", branch.ChildList().At(2).Value())
}

func Test_Decode_ScalarsAreStringified(t *testing.T) {
	root, err := Decode([]byte(`
values:
  - 42
  - true
  - 3.5
`))
	require.NoError(t, err)

	leaves := tree.Leaves(root)
	values := make([]string, 0, len(leaves))
	for _, n := range leaves {
		values = append(values, n.Value())
	}
	assert.Equal(t, []string{"42", "true", "3.5"}, values)
}

func Test_Decode_NullValueMakesEmptyBranch(t *testing.T) {
	root, err := Decode([]byte("empty:\n"))
	require.NoError(t, err)

	branch, ok := root.(*tree.Branch[string])
	require.True(t, ok)
	assert.Equal(t, "empty", branch.Value())
	assert.Equal(t, 0, branch.ChildList().Len())
}

func Test_Decode_Invalid(t *testing.T) {
	_, err := Decode([]byte("key: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot parse YAML")
}

func Test_DecodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root:\n  - a\n"), 0o644))

	root, err := DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "root", root.Value())

	_, err = DecodeFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func Test_Encode_RoundTrip(t *testing.T) {
	input := []byte(`menu:
  drinks:
  - tea
  - coffee
  food: soup
`)
	root, err := Decode(input)
	require.NoError(t, err)

	out, err := Encode(root)
	require.NoError(t, err)

	again, err := Decode(out)
	require.NoError(t, err)
	assert.True(t, root.Equal(again))
}

func Test_Encode_Leaf(t *testing.T) {
	out, err := Encode(tree.NewLeaf("solo"))
	require.NoError(t, err)
	assert.Equal(t, "solo\n", string(out))
}
