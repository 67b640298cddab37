package tree

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func walkValues(s iter.Seq[Node[string]]) []string {
	values := make([]string, 0)
	for n := range s {
		values = append(values, n.Value())
	}
	return values
}

func Test_Walk_PreOrder(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), PreOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "a", "x", "b", "s", "c", "d"}, walkValues(nodes))
}

func Test_Walk_PostOrder(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), PostOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "b", "c", "d", "s", "n"}, walkValues(nodes))
}

func Test_Walk_InOrder(t *testing.T) {
	// only the first child counts as the left subtree
	nodes, err := Walk[string](sampleTree(), InOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "a", "n", "b", "c", "s", "d"}, walkValues(nodes))
}

func Test_Walk_OutOrder(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), OutOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "s", "c", "n", "x", "a", "b"}, walkValues(nodes))
}

func Test_Walk_LevelOrder(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), LevelOrder)
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "a", "b", "s", "x", "c", "d"}, walkValues(nodes))
}

func Test_Walk_SingleLeaf(t *testing.T) {
	for _, order := range []Order{PreOrder, PostOrder, InOrder, OutOrder, LevelOrder} {
		nodes, err := Walk[string](NewLeaf("only"), order)
		require.NoError(t, err)
		assert.Equal(t, []string{"only"}, walkValues(nodes), "order %s", order)
	}
}

func Test_Walk_UnknownOrder(t *testing.T) {
	_, err := Walk[string](sampleTree(), Order("sideways"))
	require.ErrorIs(t, err, ErrUnknownOrder)

	// zig-zag only applies to whole generations
	_, err = Walk[string](sampleTree(), ZigZag)
	require.ErrorIs(t, err, ErrUnknownOrder)
}

func Test_Walk_MaxDepth(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), PreOrder, WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "a", "b", "s"}, walkValues(nodes))

	nodes, err = Walk[string](sampleTree(), PreOrder, WithMaxDepth[string](0))
	require.NoError(t, err)
	assert.Equal(t, []string{"n"}, walkValues(nodes))

	nodes, err = Walk[string](sampleTree(), PostOrder, WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "s", "n"}, walkValues(nodes))

	nodes, err = Walk[string](sampleTree(), LevelOrder, WithMaxDepth[string](1))
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "a", "b", "s"}, walkValues(nodes))
}

func Test_Walk_WithoutSelf(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), PreOrder, WithoutSelf[string]())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "x", "b", "s", "c", "d"}, walkValues(nodes))
}

func Test_Walk_KeepPrunesSubtree(t *testing.T) {
	keep := func(n Node[string]) bool { return n.Value() != "a" }

	nodes, err := Walk(sampleTree(), PreOrder, WithKeep(keep))
	require.NoError(t, err)
	// "x" is gone with its excluded parent "a"
	assert.Equal(t, []string{"n", "b", "s", "c", "d"}, walkValues(nodes))

	nodes, err = Walk(sampleTree(), LevelOrder, WithKeep(keep))
	require.NoError(t, err)
	assert.Equal(t, []string{"n", "b", "s", "c", "d"}, walkValues(nodes))
}

func Test_Walk_EarlyStop(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), PreOrder)
	require.NoError(t, err)

	seen := make([]string, 0)
	for n := range nodes {
		seen = append(seen, n.Value())
		if len(seen) == 3 {
			break
		}
	}
	assert.Equal(t, []string{"n", "a", "x"}, seen)
}

func Test_Walk_IsRestartable(t *testing.T) {
	nodes, err := Walk[string](sampleTree(), PreOrder)
	require.NoError(t, err)

	first := walkValues(nodes)
	second := walkValues(nodes)
	assert.Equal(t, first, second)
}

func Test_Walk_ReflectsMutations(t *testing.T) {
	root := sampleTree()
	nodes, err := Walk[string](root, PreOrder)
	require.NoError(t, err)

	assert.Len(t, walkValues(nodes), 7)
	require.NoError(t, root.ChildList().Delete(0))
	assert.Len(t, walkValues(nodes), 5)
}

func Test_WalkGroups_LevelOrder(t *testing.T) {
	groups, err := WalkGroups[string](sampleTree(), LevelOrder)
	require.NoError(t, err)

	rows := make([][]string, 0)
	for generation := range groups {
		row := make([]string, 0, len(generation))
		for _, n := range generation {
			row = append(row, n.Value())
		}
		rows = append(rows, row)
	}
	assert.Equal(t, [][]string{{"n"}, {"a", "b", "s"}, {"x", "c", "d"}}, rows)
}

func Test_WalkGroups_ZigZag(t *testing.T) {
	groups, err := WalkGroups[string](sampleTree(), ZigZag)
	require.NoError(t, err)

	rows := make([][]string, 0)
	for generation := range groups {
		row := make([]string, 0, len(generation))
		for _, n := range generation {
			row = append(row, n.Value())
		}
		rows = append(rows, row)
	}
	assert.Equal(t, [][]string{{"n"}, {"s", "b", "a"}, {"x", "c", "d"}}, rows)
}

func Test_WalkGroups_MaxDepth(t *testing.T) {
	groups, err := WalkGroups[string](sampleTree(), LevelOrder, WithMaxDepth[string](1))
	require.NoError(t, err)

	count := 0
	for range groups {
		count++
	}
	assert.Equal(t, 2, count)
}

func Test_Walk_IntTree(t *testing.T) {
	root := MustBranch[int](1, 2, MustBranch[int](3, 4))
	sub := root.ChildList().At(2)

	assert.Equal(t, 2, Height[int](root))
	assert.Equal(t, 1, Depth(sub))

	collect := func(order Order) []int {
		nodes, err := Walk[int](root, order)
		require.NoError(t, err)
		var values []int
		for n := range nodes {
			values = append(values, n.Value())
		}
		return values
	}
	// branch payloads default to the zero value
	assert.Equal(t, []int{0, 1, 2, 0, 3, 4}, collect(PreOrder))
	assert.Equal(t, []int{1, 2, 3, 4, 0, 0}, collect(PostOrder))
}

func Test_WalkGroups_GenerationDepths(t *testing.T) {
	groups, err := WalkGroups[string](sampleTree(), LevelOrder)
	require.NoError(t, err)

	generation := 0
	for nodes := range groups {
		for _, n := range nodes {
			assert.Equal(t, generation, Depth(n))
		}
		generation++
	}
}

func Test_WalkGroups_RejectsOtherOrders(t *testing.T) {
	_, err := WalkGroups[string](sampleTree(), PreOrder)
	require.ErrorIs(t, err, ErrUnknownOrder)
}
