package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd := &cli.Command{
		Name:  "treekit",
		Usage: "Inspect, query, and render YAML trees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Value: "warn",
				Usage: "Log level: debug, info, warn, error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := setupLogging(cmd.String("log")); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Commands: getCommands(),
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
