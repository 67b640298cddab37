package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/mholzen/treekit/pkg/mcp"
	"github.com/mholzen/treekit/pkg/reports"
	"github.com/mholzen/treekit/pkg/search"
	"github.com/mholzen/treekit/pkg/tree"
	"github.com/mholzen/treekit/pkg/treemd"
	"github.com/mholzen/treekit/pkg/treeyaml"
)

func getCommands() []*cli.Command {
	return []*cli.Command{
		getPrintCommand(),
		getFindCommand(),
		getLevelsCommand(),
		getStatsCommand(),
		getConvertCommand(),
		getMcpCommand(),
		getVersionCommand(),
	}
}

func getConvertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Convert a tree between YAML and markdown bullet lists",
		UsageText: "treekit convert [<file>] [options]",
		Arguments: getFileArguments(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Value: "yaml",
				Usage: "Input format: yaml or markdown",
			},
			&cli.StringFlag{
				Name:  "to",
				Value: "markdown",
				Usage: "Output format: yaml or markdown",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			data, err := readInput(cmd)
			if err != nil {
				return err
			}

			var root tree.Node[string]
			switch from := cmd.String("from"); from {
			case "yaml":
				root, err = treeyaml.Decode(data)
			case "markdown":
				root, err = treemd.Decode(data)
			default:
				return fmt.Errorf("unknown input format: %s", from)
			}
			if err != nil {
				return err
			}

			switch to := cmd.String("to"); to {
			case "yaml":
				out, err := treeyaml.Encode(root)
				if err != nil {
					return err
				}
				fmt.Print(string(out))
			case "markdown":
				fmt.Print(treemd.Encode(root))
			default:
				return fmt.Errorf("unknown output format: %s", to)
			}
			return nil
		},
	}
}

func getPrintCommand() *cli.Command {
	return &cli.Command{
		Name:      "print",
		Usage:     "Render a YAML tree as indented text",
		UsageText: "treekit print [<file>] [options]",
		Arguments: getFileArguments(),
		Flags: []cli.Flag{
			getStyleFlag(),
			getDepthFlag("Levels to render (-1 for all)"),
			getNoColorFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			root, err := loadTree(cmd)
			if err != nil {
				return err
			}

			if depth := int(cmd.Int("depth")); depth >= 0 {
				tree.Prune(root, depth)
			}

			style, err := tree.StyleNamed(cmd.String("style"))
			if err != nil {
				return err
			}

			if cmd.Bool("no-color") {
				color.NoColor = true
			}

			fmt.Println(tree.Render(root, style, colorRenderer()))
			return nil
		},
	}
}

func getFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "Find nodes whose label matches a pattern",
		UsageText: "treekit find <pattern> [<file>] [options]",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "pattern",
				UsageText: "<pattern>",
			},
			&cli.StringArg{
				Name:      "file",
				Value:     "-",
				UsageText: "<file> (default: stdin)",
			},
		},
		Flags: []cli.Flag{
			getIgnoreCaseFlag(),
			getRegexpFlag(),
			getOrderFlag(),
			getDepthFlag("Levels to search (-1 for all)"),
			getFormatFlag("list"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			pattern := cmd.StringArg("pattern")
			if strings.TrimSpace(pattern) == "" {
				return fmt.Errorf("pattern is required")
			}

			matcher, err := search.NewMatcher(pattern, search.Options{
				Regexp:     cmd.Bool("regexp"),
				IgnoreCase: cmd.Bool("ignore-case"),
			})
			if err != nil {
				return err
			}

			root, err := loadTree(cmd)
			if err != nil {
				return err
			}

			results, err := search.FindNodes(root, matcher, nil,
				tree.WithOrder[string](tree.Order(cmd.String("order"))),
				tree.WithMaxDepth[string](int(cmd.Int("depth"))),
			)
			if err != nil {
				return err
			}

			if format == "json" {
				printJSON(map[string]any{"results": results})
				return nil
			}
			for _, result := range results {
				fmt.Printf("- %s: %s\n", result.Path, result.Highlighted)
			}
			return nil
		},
	}
}

func getLevelsCommand() *cli.Command {
	return &cli.Command{
		Name:      "levels",
		Usage:     "List the tree generation by generation",
		UsageText: "treekit levels [<file>] [options]",
		Arguments: getFileArguments(),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "zigzag",
				Usage: "Reverse every other generation",
			},
			getDepthFlag("Generations to list below the root (-1 for all)"),
			getFormatFlag("list"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			root, err := loadTree(cmd)
			if err != nil {
				return err
			}

			order := tree.LevelOrder
			if cmd.Bool("zigzag") {
				order = tree.ZigZag
			}

			generations, err := tree.WalkGroups(root, order,
				tree.WithMaxDepth[string](int(cmd.Int("depth"))),
			)
			if err != nil {
				return err
			}

			var rows [][]string
			for generation := range generations {
				row := make([]string, len(generation))
				for i, node := range generation {
					row[i] = tree.DefaultRenderer(node)
				}
				rows = append(rows, row)
			}

			if format == "json" {
				printJSON(map[string]any{"generations": rows})
				return nil
			}
			for i, row := range rows {
				fmt.Printf("%d: %s\n", i, strings.Join(row, " "))
			}
			return nil
		},
	}
}

func getStatsCommand() *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "Summarize tree shape",
		UsageText: "treekit stats [<file>] [options]",
		Arguments: getFileArguments(),
		Flags: []cli.Flag{
			getFormatFlag("text"),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format := cmd.String("format")
			if err := validateFormat(format); err != nil {
				return err
			}

			root, err := loadTree(cmd)
			if err != nil {
				return err
			}

			stats, err := reports.Collect(root)
			if err != nil {
				return err
			}

			if format == "json" {
				printJSON(stats)
				return nil
			}
			fmt.Println(stats)
			return nil
		},
	}
}

func getMcpCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcp",
		Usage:     "Run as MCP server (stdio transport)",
		UsageText: "treekit mcp [options]",
		Description: `Start the treekit MCP server for integration with AI assistants.

The server communicates via stdio using the Model Context Protocol (MCP).
All tools are read-only; trees are loaded from YAML files per call.

Examples:
  treekit mcp --file=notes.yaml      # Default file for every tool
  treekit mcp --expose=print,find    # Specific tools only`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Default YAML file for tools (calls may override)",
			},
			&cli.StringFlag{
				Name:  "expose",
				Value: "all",
				Usage: "Tools to expose: all, or comma-separated tool names",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			serverConfig := mcp.Config{
				File:    cmd.String("file"),
				Expose:  cmd.String("expose"),
				Version: version,
			}
			return mcp.RunServer(ctx, serverConfig)
		},
	}
}

func getVersionCommand() *cli.Command {
	return &cli.Command{
		Name:      "version",
		Usage:     "Show version information",
		UsageText: "treekit version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fmt.Printf("treekit version %s\n", version)
			fmt.Printf("commit: %s\n", commit)
			fmt.Printf("built: %s\n", date)
			return nil
		},
	}
}
