package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <name> <value>",
	Short: "Add or replace a snippet",
	Long: `Store a snippet, replacing any existing snippet with the same name.
The snippet is moved to the end of the file.

With the default "swap" removal strategy, the snippet that was last in
the file takes the replaced snippet's old position. Set 'removal: stable'
in the config file to keep the other snippets in order.

Example:
  snip set ports 'ss -tulpn'`,
	Args: argsExactly(2),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	name, value := args[0], args[1]

	res, err := openStore().Set(name, value)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if jsonOutput {
		status := "added"
		if res.Replaced {
			status = "replaced"
		}
		return outputJSON(out, StatusResponse{Status: status, Name: name, Value: value})
	}
	outputLine(out, msgSet, name)
	return nil
}
