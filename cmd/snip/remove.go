package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a snippet",
	Long: `Remove the snippet with the given name.

Nothing happens if the snippets file is empty or cannot be parsed.

Example:
  snip remove ports`,
	Args: argsExactly(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]
	res := openStore().Remove(name)
	out := cmd.OutOrStdout()

	switch {
	case res.Removed:
		if jsonOutput {
			return outputJSON(out, StatusResponse{Status: "removed", Name: name})
		}
		outputLine(out, msgRemoved, name)
	case res.Missing:
		if jsonOutput {
			return outputJSON(out, StatusResponse{Status: "missing", Name: name})
		}
		outputLine(out, msgNotExists, name)
	}
	return nil
}
