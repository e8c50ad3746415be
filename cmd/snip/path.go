package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(pathCmd)
}

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the snippets file path",
	Args:  argsExactly(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputLine(cmd.OutOrStdout(), "%s", settings.SnippetsFile)
		return nil
	},
}
