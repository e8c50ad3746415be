package main

import (
	"fmt"
	"log/slog"

	"github.com/matsen/snip/internal/clipboard"
	"github.com/spf13/cobra"
)

var findCopy bool

func init() {
	findCmd.Flags().BoolVarP(&findCopy, "copy", "c", false, "Also copy the value to the clipboard")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <name>",
	Short: "Print the value of a snippet",
	Long: `Print the value of every snippet named exactly <name>, one per line.
'snip <name>' is shorthand for 'snip find <name>'.

Prints nothing if there is no such snippet or the file cannot be parsed.

Examples:
  snip ports
  snip find ports --copy`,
	Args: argsExactly(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	name := args[0]
	values, err := openStore().Find(name)
	if err != nil {
		slog.Debug("find skipped", "name", name, "error", err)
	}
	out := cmd.OutOrStdout()

	if jsonOutput {
		if values == nil {
			values = []string{}
		}
		if err := outputJSON(out, values); err != nil {
			return err
		}
	} else {
		for _, v := range values {
			outputLine(out, "%s", v)
		}
	}

	if findCopy && len(values) > 0 {
		if err := clipboard.Copy(values[0]); err != nil {
			return fmt.Errorf("copying to clipboard: %w", err)
		}
	}
	return nil
}
