package mcp

import (
	"context"
	"fmt"
	"strings"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/mholzen/treekit/pkg/cache"
	"github.com/mholzen/treekit/pkg/reports"
	"github.com/mholzen/treekit/pkg/search"
	"github.com/mholzen/treekit/pkg/tree"
)

const (
	ToolPrint  = "tree_print"
	ToolFind   = "tree_find"
	ToolLevels = "tree_levels"
	ToolStats  = "tree_stats"
)

// ToolBuilder wires tree operations into MCP tool handlers.
type ToolBuilder struct {
	defaultFile string
	trees       *cache.TreeCache
}

// NewToolBuilder creates a builder whose tools load defaultFile when a
// call does not name a file of its own. Parsed trees are cached across
// calls and re-read when the file changes.
func NewToolBuilder(defaultFile string) ToolBuilder {
	return ToolBuilder{defaultFile: defaultFile, trees: cache.NewTreeCache()}
}

// BuildTools instantiates the named tools, in order.
func (b ToolBuilder) BuildTools(toolNames []string) ([]mcpserver.ServerTool, error) {
	factories := map[string]func() mcpserver.ServerTool{
		ToolPrint:  b.buildPrintTool,
		ToolFind:   b.buildFindTool,
		ToolLevels: b.buildLevelsTool,
		ToolStats:  b.buildStatsTool,
	}

	var tools []mcpserver.ServerTool
	for _, name := range toolNames {
		factory, ok := factories[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool: %s", name)
		}
		tools = append(tools, factory())
	}
	return tools, nil
}

func (b ToolBuilder) loadTree(file string) (tree.Node[string], error) {
	file = strings.TrimSpace(file)
	if file == "" {
		file = b.defaultFile
	}
	if file == "" {
		return nil, fmt.Errorf("no file given and no default file configured")
	}
	return b.trees.Load(file)
}

func fileParam(b ToolBuilder) mcptypes.ToolOption {
	return mcptypes.WithString("file",
		mcptypes.Description("YAML file to load (default: "+b.defaultFile+")"),
		mcptypes.DefaultString(""),
	)
}

func (b ToolBuilder) buildPrintTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolPrint,
			mcptypes.WithDescription("Render a YAML tree as indented text"),
			fileParam(b),
			mcptypes.WithString("style",
				mcptypes.Description("Line style: ascii, line, rounded, or double"),
				mcptypes.DefaultString("line"),
			),
			mcptypes.WithNumber("depth",
				mcptypes.Description("Levels to render (-1 for all)"),
				mcptypes.DefaultNumber(-1),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root, err := b.loadTree(req.GetString("file", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load tree", err), nil
			}

			if depth := req.GetInt("depth", -1); depth >= 0 {
				tree.Prune(root, depth)
			}

			text, err := tree.RenderNamed(root, req.GetString("style", "line"), nil)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot render tree", err), nil
			}
			return mcptypes.NewToolResultText(text), nil
		},
	}
}

func (b ToolBuilder) buildFindTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolFind,
			mcptypes.WithDescription("Find nodes whose label matches a pattern"),
			fileParam(b),
			mcptypes.WithString("pattern",
				mcptypes.Description("Substring or regular expression to match"),
			),
			mcptypes.WithBoolean("regexp",
				mcptypes.Description("Treat pattern as a regular expression"),
				mcptypes.DefaultBool(false),
			),
			mcptypes.WithBoolean("ignore_case",
				mcptypes.Description("Case-insensitive matching"),
				mcptypes.DefaultBool(false),
			),
			mcptypes.WithString("order",
				mcptypes.Description("Traversal order: pre-order, post-order, in-order, out-order, or level-order"),
				mcptypes.DefaultString("pre-order"),
			),
			mcptypes.WithNumber("depth",
				mcptypes.Description("Levels to search (-1 for all)"),
				mcptypes.DefaultNumber(-1),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			pattern := strings.TrimSpace(req.GetString("pattern", ""))
			if pattern == "" {
				return mcptypes.NewToolResultError("pattern is required"), nil
			}

			matcher, err := search.NewMatcher(pattern, search.Options{
				Regexp:     req.GetBool("regexp", false),
				IgnoreCase: req.GetBool("ignore_case", false),
			})
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot compile pattern", err), nil
			}

			root, err := b.loadTree(req.GetString("file", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load tree", err), nil
			}

			results, err := search.FindNodes(root, matcher, nil,
				tree.WithOrder[string](tree.Order(req.GetString("order", "pre-order"))),
				tree.WithMaxDepth[string](req.GetInt("depth", -1)),
			)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot search tree", err), nil
			}

			return mcptypes.NewToolResultJSON(map[string]any{"results": results})
		},
	}
}

func (b ToolBuilder) buildLevelsTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolLevels,
			mcptypes.WithDescription("List the tree generation by generation"),
			fileParam(b),
			mcptypes.WithBoolean("zigzag",
				mcptypes.Description("Reverse every other generation"),
				mcptypes.DefaultBool(false),
			),
			mcptypes.WithNumber("depth",
				mcptypes.Description("Generations to list below the root (-1 for all)"),
				mcptypes.DefaultNumber(-1),
			),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root, err := b.loadTree(req.GetString("file", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load tree", err), nil
			}

			order := tree.LevelOrder
			if req.GetBool("zigzag", false) {
				order = tree.ZigZag
			}

			generations, err := tree.WalkGroups(root, order,
				tree.WithMaxDepth[string](req.GetInt("depth", -1)),
			)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot traverse tree", err), nil
			}

			var rows [][]string
			for generation := range generations {
				row := make([]string, len(generation))
				for i, node := range generation {
					row[i] = tree.DefaultRenderer(node)
				}
				rows = append(rows, row)
			}

			return mcptypes.NewToolResultJSON(map[string]any{"generations": rows})
		},
	}
}

func (b ToolBuilder) buildStatsTool() mcpserver.ServerTool {
	return mcpserver.ServerTool{
		Tool: mcptypes.NewTool(
			ToolStats,
			mcptypes.WithDescription("Summarize tree shape: node counts, height, generation sizes"),
			fileParam(b),
		),
		Handler: func(ctx context.Context, req mcptypes.CallToolRequest) (*mcptypes.CallToolResult, error) {
			root, err := b.loadTree(req.GetString("file", ""))
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot load tree", err), nil
			}

			stats, err := reports.Collect(root)
			if err != nil {
				return mcptypes.NewToolResultErrorFromErr("cannot collect stats", err), nil
			}
			return mcptypes.NewToolResultJSON(stats)
		},
	}
}
