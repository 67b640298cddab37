package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v3"

	"github.com/mholzen/treekit/pkg/tree"
	"github.com/mholzen/treekit/pkg/treeyaml"
)

func printJSON(response any) {
	printJSONToWriter(os.Stdout, response)
}

func printJSONToWriter(w io.Writer, response any) {
	prettyJSON, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		log.Fatalf("cannot format JSON: %v", err)
	}
	fmt.Fprintf(w, "%s\n", prettyJSON)
}

// readInput reads the file argument, with "-" meaning stdin.
func readInput(cmd *cli.Command) ([]byte, error) {
	file := cmd.StringArg("file")
	if file == "" || file == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("cannot read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", file, err)
	}
	return data, nil
}

func loadTree(cmd *cli.Command) (tree.Node[string], error) {
	data, err := readInput(cmd)
	if err != nil {
		return nil, err
	}
	return treeyaml.Decode(data)
}

// colorRenderer labels branches in cyan so structure stands out from
// leaf values. color.NoColor handles non-tty output.
func colorRenderer() tree.Renderer[string] {
	branchColor := color.New(color.FgCyan).SprintFunc()
	return func(n tree.Node[string]) string {
		label := tree.DefaultRenderer(n)
		if n.IsLeaf() {
			return label
		}
		return branchColor(label)
	}
}
