package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/matsen/snip/internal/store"
)

const (
	// SnippetsFileEnv overrides the configured store path.
	SnippetsFileEnv = "SNIP_FILE"
	// DefaultSnippetsFile is the store file name under XDG_DATA_HOME/snip.
	DefaultSnippetsFile = "snips.txt"
	// IndexFile is the search index file name under XDG_CACHE_HOME/snip.
	IndexFile = "index.db"
)

// Settings is the configuration resolved once at startup.
type Settings struct {
	SnippetsFile string
	Removal      store.RemovalStrategy
	LogLevel     slog.Level
	IndexPath    string
}

// DefaultSnippetsPath returns the default store path.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/snip/snips.txt.
func DefaultSnippetsPath() string {
	return xdgPath("XDG_DATA_HOME", ".local/share", DefaultSnippetsFile)
}

// IndexPath returns the search index path.
// Respects XDG_CACHE_HOME, defaults to ~/.cache/snip/index.db.
func IndexPath() string {
	return xdgPath("XDG_CACHE_HOME", ".cache", IndexFile)
}

// Resolve builds Settings from, in decreasing priority, the fileFlag
// argument, the SNIP_FILE environment variable, the global config file,
// and the XDG default.
func Resolve(fileFlag string) (*Settings, error) {
	cfg, err := LoadGlobalConfig()
	if err != nil {
		return nil, err
	}

	path := fileFlag
	if path == "" {
		path = GetConfigValue(SnippetsFileEnv, cfg.SnippetsFile)
	}
	if path == "" {
		path = DefaultSnippetsPath()
	}
	if path == "" {
		return nil, fmt.Errorf("cannot determine snippets file: set %s or snippets_file", SnippetsFileEnv)
	}

	if err := store.ValidateRemovalStrategy(cfg.Removal); err != nil {
		return nil, err
	}

	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return &Settings{
		SnippetsFile: ExpandTilde(path),
		Removal:      store.RemovalStrategy(cfg.Removal),
		LogLevel:     level,
		IndexPath:    IndexPath(),
	}, nil
}

// ParseLogLevel maps a config value to a slog level. Empty means warn.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "":
		return slog.LevelWarn, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log_level: %s (valid: debug, info, warn, error)", s)
	}
}
