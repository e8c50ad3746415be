package main

import (
	"fmt"
	"strings"

	"github.com/matsen/snip/internal/config"
	"github.com/matsen/snip/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Get or set configuration values",
	Long: `Get or set values in ~/.config/snip/config.yml.

Usage:
  snip config                          # Show all config
  snip config snippets-file            # Get specific value
  snip config snippets-file ~/snips.txt
  snip config removal stable

Keys:
  snippets-file  Path to the snippets file
  removal        How entries are removed: swap (default) or stable
  log-level      debug, info, warn (default) or error`,
	Args: argsAtMost(2),
	// Config must stay editable even when the current file is invalid.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runConfig,
}

// ConfigResponse is the response for config get commands.
type ConfigResponse struct {
	SnippetsFile string `json:"snippets_file,omitempty"`
	Removal      string `json:"removal,omitempty"`
	LogLevel     string `json:"log_level,omitempty"`
}

// UpdateResponse is the response for config set commands.
type UpdateResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	Value  string `json:"value"`
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadGlobalConfig()
	if err != nil {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("loading config: %w", err)}
	}
	out := cmd.OutOrStdout()

	// No args: show all config
	if len(args) == 0 {
		if jsonOutput {
			return outputJSON(out, ConfigResponse{
				SnippetsFile: cfg.SnippetsFile,
				Removal:      cfg.Removal,
				LogLevel:     cfg.LogLevel,
			})
		}
		outputLine(out, "snippets-file: %s", cfg.SnippetsFile)
		outputLine(out, "removal:       %s", cfg.Removal)
		outputLine(out, "log-level:     %s", cfg.LogLevel)
		return nil
	}

	key := normalizeKey(args[0])
	field, ok := configField(cfg, key)
	if !ok {
		return fmt.Errorf("unknown configuration key: %s", args[0])
	}

	// One arg: get specific value
	if len(args) == 1 {
		if jsonOutput {
			return outputJSON(out, map[string]string{strings.ReplaceAll(key, "-", "_"): *field})
		}
		outputLine(out, "%s", *field)
		return nil
	}

	// Two args: set value
	value := args[1]
	switch key {
	case "snippets-file":
		value = config.ExpandTilde(value)
	case "removal":
		if err := store.ValidateRemovalStrategy(value); err != nil {
			return err
		}
	case "log-level":
		if _, err := config.ParseLogLevel(value); err != nil {
			return err
		}
	}
	*field = value

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if jsonOutput {
		return outputJSON(out, UpdateResponse{Status: "updated", Key: key, Value: value})
	}
	outputLine(out, "Updated %s to %s", key, value)
	return nil
}

// configField returns a pointer to the config field for key.
func configField(cfg *config.GlobalConfig, key string) (*string, bool) {
	switch key {
	case "snippets-file":
		return &cfg.SnippetsFile, true
	case "removal":
		return &cfg.Removal, true
	case "log-level":
		return &cfg.LogLevel, true
	}
	return nil, false
}

// normalizeKey converts key formats (log-level, log_level, LOG_LEVEL) to consistent format
func normalizeKey(key string) string {
	key = strings.ToLower(key)
	key = strings.ReplaceAll(key, "_", "-")
	return key
}
