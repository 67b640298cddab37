package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/mholzen/treekit/pkg/tree"
)

func getFileArguments() []cli.Argument {
	return []cli.Argument{
		&cli.StringArg{
			Name:      "file",
			Value:     "-",
			UsageText: "<file> (default: stdin)",
		},
	}
}

func getStyleFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "style",
		Value: "line",
		Usage: "Line style: " + strings.Join(tree.StyleNames(), ", "),
	}
}

func getDepthFlag(usage string) cli.Flag {
	return &cli.IntFlag{
		Name:    "depth",
		Aliases: []string{"d"},
		Value:   -1,
		Usage:   usage,
	}
}

func getOrderFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "order",
		Value: string(tree.PreOrder),
		Usage: "Traversal order: pre-order, post-order, in-order, out-order, or level-order",
	}
}

func getIgnoreCaseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "ignore-case",
		Aliases: []string{"i"},
		Usage:   "Case-insensitive matching",
	}
}

func getRegexpFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "regexp",
		Aliases: []string{"E"},
		Usage:   "Treat pattern as regular expression",
	}
}

func getNoColorFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable colored output",
	}
}

func getFormatFlag(defaultValue string) cli.Flag {
	return &cli.StringFlag{
		Name:  "format",
		Value: defaultValue,
		Usage: "Output format: list, json, or text",
	}
}

func validateFormat(format string) error {
	if format != "list" && format != "json" && format != "text" {
		return fmt.Errorf("format must be 'list', 'json', or 'text'")
	}
	return nil
}
