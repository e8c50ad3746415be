package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export snippets as JSON lines",
	Long: `Write every snippet as one JSON object per line, in file order.

Example:
  snip export > snippets.jsonl`,
	Args: argsExactly(0),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	entries, err := openStore().Entries()
	if err != nil {
		return &exitError{code: ExitDataError, err: err}
	}

	out := cmd.OutOrStdout()
	for _, e := range entries {
		if err := outputJSONCompact(out, e); err != nil {
			return err
		}
	}
	return nil
}
