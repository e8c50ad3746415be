package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <value>",
	Short: "Add a snippet if the name is not taken",
	Long: `Add a snippet. Nothing is written if a snippet with the same name
already exists; use 'set' to replace it.

If the snippets file cannot be parsed it is replaced by a file holding
only the new snippet.

Examples:
  snip add ports 'lsof -i -P -n'
  snip -a gl 'git log --oneline'`,
	Args: argsExactly(2),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	name, value := args[0], args[1]

	res, err := openStore().Add(name, value)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if res.Existing != nil {
		if jsonOutput {
			return outputJSON(out, StatusResponse{Status: "exists", Name: name, Value: res.Existing.Value})
		}
		outputLine(out, msgExists, name, res.Existing.Value)
		return nil
	}

	if jsonOutput {
		return outputJSON(out, StatusResponse{Status: "added", Name: name, Value: value})
	}
	outputLine(out, msgAdded, name)
	return nil
}
