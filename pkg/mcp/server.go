// Package mcp exposes read-only tree inspection tools over the Model
// Context Protocol (stdio transport). Trees are loaded from YAML files
// per call.
package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Config controls MCP server startup.
type Config struct {
	// File is the default YAML file; individual calls may override it.
	File    string
	Expose  string
	Version string
}

// RunServer starts the MCP stdio server with the requested tool set.
func RunServer(ctx context.Context, cfg Config) error {
	expose := strings.TrimSpace(cfg.Expose)
	if expose == "" {
		expose = "all"
	}

	toolsToEnable, err := ParseExposeList(expose)
	if err != nil {
		return err
	}

	builder := NewToolBuilder(cfg.File)
	serverTools, err := builder.BuildTools(toolsToEnable)
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer(
		"treekit",
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithLogging(),
	)

	for _, tool := range serverTools {
		server.AddTool(tool.Tool, tool.Handler)
	}

	return mcpserver.ServeStdio(server, mcpserver.WithStdioContextFunc(func(_ context.Context) context.Context {
		return ctx
	}))
}

// ParseExposeList converts the --expose flag into a deduplicated, ordered
// tool list. Tools can be referenced by short name (e.g. "print") or full
// MCP name (e.g. "tree_print"); "all" expands to every tool.
func ParseExposeList(raw string) ([]string, error) {
	tokenList := strings.Split(raw, ",")

	var tokens []string
	for _, t := range tokenList {
		token := strings.TrimSpace(strings.ToLower(t))
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	if len(tokens) == 0 {
		tokens = []string{"all"}
	}

	result := make([]string, 0, len(allTools))
	seen := make(map[string]struct{})

	addSet := func(names []string) {
		for _, name := range names {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			result = append(result, name)
		}
	}

	for _, token := range tokens {
		if token == "all" {
			addSet(allTools)
			continue
		}

		if alias, ok := aliasMap[token]; ok {
			addSet([]string{alias})
			continue
		}

		if _, ok := fullNames[token]; ok {
			addSet([]string{token})
			continue
		}

		return nil, fmt.Errorf("unknown tool in --expose: %s", token)
	}

	return result, nil
}

var (
	allTools = []string{
		ToolPrint,
		ToolFind,
		ToolLevels,
		ToolStats,
	}

	aliasMap = map[string]string{
		"print":  ToolPrint,
		"find":   ToolFind,
		"levels": ToolLevels,
		"stats":  ToolStats,
	}

	fullNames = map[string]struct{}{
		ToolPrint:  {},
		ToolFind:   {},
		ToolLevels: {},
		ToolStats:  {},
	}
)
