package main

import (
	"github.com/matsen/snip/internal/snippet"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list [substring]",
	Short: "List snippets, optionally filtered by name",
	Long: `List every snippet as "name: value", in file order.

With an argument, only snippets whose name contains it are listed
(case-sensitive).

Examples:
  snip list
  snip -l git`,
	Args: argsAtMost(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	var filter string
	if len(args) == 1 {
		filter = args[0]
	}

	s := openStore()
	res := s.List(filter)
	out := cmd.OutOrStdout()

	if jsonOutput {
		if res.SyntaxError {
			return outputJSON(out, ErrorResponse{Error: "syntax error found in " + s.Path()})
		}
		entries := res.Entries
		if entries == nil {
			entries = []snippet.Entry{}
		}
		return outputJSON(out, entries)
	}

	if res.Empty {
		outputLine(out, msgNoSnippets)
	}
	if res.SyntaxError {
		outputLine(out, msgSyntaxError, s.Path())
		return nil
	}
	for _, e := range res.Entries {
		outputLine(out, msgListEntry, e.Name, e.Value)
	}

	return nil
}
