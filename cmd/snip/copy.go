package main

import (
	"fmt"

	"github.com/matsen/snip/internal/clipboard"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(copyCmd)
}

var copyCmd = &cobra.Command{
	Use:   "copy <name>",
	Short: "Copy a snippet value to the clipboard",
	Long: `Copy the value of the snippet named <name> to the system clipboard.

Uses pbcopy on macOS, and wl-copy, xclip or xsel on Linux.

Example:
  snip copy ports`,
	Args: argsExactly(1),
	RunE: runCopy,
}

func runCopy(cmd *cobra.Command, args []string) error {
	if !clipboard.IsAvailable() {
		return clipboard.ErrClipboardUnavailable
	}

	name := args[0]
	values, err := openStore().Find(name)
	if err != nil {
		return &exitError{code: ExitDataError, err: err}
	}
	if len(values) == 0 {
		return fmt.Errorf("snippet not found: %s", name)
	}

	if err := clipboard.Copy(values[0]); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return outputJSON(out, StatusResponse{Status: "copied", Name: name, Value: values[0]})
	}
	outputLine(out, "%s copied", name)
	return nil
}
