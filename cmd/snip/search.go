package main

import (
	"log/slog"
	"strings"

	"github.com/matsen/snip/internal/searchindex"
	"github.com/spf13/cobra"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", searchindex.DefaultLimit, "Maximum results to return")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <query>...",
	Short: "Full-text search over snippet names and values",
	Long: `Search snippet names and values. Every word of the query must match
the start of a word in the snippet; the best matches come first.

The search index lives in ~/.cache/snip/index.db and is rebuilt
automatically whenever the snippets file changes.

Examples:
  snip search docker
  snip search git push --limit 5`,
	Args: argsAtLeast(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	s := openStore()

	idx, err := searchindex.Open(settings.IndexPath)
	if err != nil {
		return err
	}
	defer idx.Close()

	rebuilt, err := idx.Sync(s.Path(), s.Entries)
	if err != nil {
		return &exitError{code: ExitDataError, err: err}
	}
	if rebuilt {
		count, _ := idx.Count()
		slog.Debug("search index rebuilt", "index", settings.IndexPath, "entries", count)
	} else if last, err := idx.LastSync(); err == nil {
		slog.Debug("search index up to date", "index", settings.IndexPath, "last_sync", last)
	}

	results, err := idx.Search(strings.Join(args, " "), searchLimit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if jsonOutput {
		if results == nil {
			results = []searchindex.Result{}
		}
		return outputJSON(out, results)
	}

	if len(results) == 0 {
		outputLine(out, msgNoSnippets)
		return nil
	}
	for _, r := range results {
		outputLine(out, msgListEntry, r.Name, r.Value)
	}
	return nil
}
