package mcp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ParseExposeList_All(t *testing.T) {
	tools, err := ParseExposeList("all")
	require.NoError(t, err)
	assert.Equal(t, []string{ToolPrint, ToolFind, ToolLevels, ToolStats}, tools)
}

func Test_ParseExposeList_Aliases(t *testing.T) {
	tools, err := ParseExposeList("print,find")
	require.NoError(t, err)
	assert.Equal(t, []string{ToolPrint, ToolFind}, tools)
}

func Test_ParseExposeList_FullNames(t *testing.T) {
	tools, err := ParseExposeList("tree_stats,tree_print")
	require.NoError(t, err)
	assert.Equal(t, []string{ToolStats, ToolPrint}, tools)
}

func Test_ParseExposeList_Deduplicates(t *testing.T) {
	tools, err := ParseExposeList("print, tree_print, PRINT")
	require.NoError(t, err)
	assert.Equal(t, []string{ToolPrint}, tools)
}

func Test_ParseExposeList_EmptyMeansAll(t *testing.T) {
	tools, err := ParseExposeList("")
	require.NoError(t, err)
	assert.Len(t, tools, 4)

	tools, err = ParseExposeList(" , ,")
	require.NoError(t, err)
	assert.Len(t, tools, 4)
}

func Test_ParseExposeList_Unknown(t *testing.T) {
	_, err := ParseExposeList("print,bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown tool")
}

func Test_BuildTools(t *testing.T) {
	builder := NewToolBuilder("")

	tools, err := builder.BuildTools([]string{ToolPrint, ToolStats})
	require.NoError(t, err)
	require.Len(t, tools, 2)
	assert.Equal(t, ToolPrint, tools[0].Tool.Name)
	assert.Equal(t, ToolStats, tools[1].Tool.Name)

	_, err = builder.BuildTools([]string{"bogus"})
	require.Error(t, err)
}

func Test_LoadTree(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("root:\n  - a\n"), 0o644))

	builder := NewToolBuilder(path)

	root, err := builder.loadTree("")
	require.NoError(t, err)
	assert.Equal(t, "root", root.Value())

	root, err = builder.loadTree(path)
	require.NoError(t, err)
	assert.Equal(t, "root", root.Value())
}

func Test_LoadTree_NoFile(t *testing.T) {
	builder := NewToolBuilder("")
	_, err := builder.loadTree("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no file given")
}
