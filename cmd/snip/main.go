// Package main provides the snip CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/matsen/snip/internal/config"
	"github.com/matsen/snip/internal/store"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// jsonOutput switches output from the plain text format to JSON
	jsonOutput bool
	// fileFlag overrides the configured snippets file
	fileFlag string
	verbose  bool
)

// invokedAs is the command word as typed, such as -a for add.
var invokedAs string

// settings is resolved once per invocation before any command runs.
var settings *config.Settings

func main() {
	// Load .env file if present (for SNIP_FILE)
	_ = godotenv.Load()

	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI with args and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	args, typed, err := normalizeArgs(args, commandDispatcher(args))
	invokedAs = typed
	if args == nil {
		args = []string{}
	}
	if err == nil {
		rootCmd.SetArgs(args)
		rootCmd.SetOut(stdout)
		rootCmd.SetErr(stderr)
		err = rootCmd.Execute()
	}
	if err == nil {
		return ExitSuccess
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(stdout, uerr.msg)
		return ExitSuccess
	}

	var cerr *exitError
	if errors.As(err, &cerr) {
		fmt.Fprintf(stderr, "error: %s\n", cerr.err)
		return cerr.code
	}

	// Print the error since we have SilenceErrors: true
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return ExitError
}

var rootCmd = &cobra.Command{
	Use:   "snip",
	Short: "Personal command-line snippet store",
	Long: `snip keeps named text snippets (typically shell commands) in a single
flat text file, one per line:

  <name> '<value>'

Look a snippet up by name with 'snip <name>'. The flag-style forms
--list/-l, --add/-a, --set/-s, --remove/-r and --help/-h work as
aliases for the subcommands of the same name.

The file location comes from --file, then SNIP_FILE, then snippets_file
in ~/.config/snip/config.yml, then ~/.local/share/snip/snips.txt.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Use JSON output instead of plain text")
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "", "Snippets file to use")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.Version = Version
}

// loadSettings resolves configuration and sets up logging.
func loadSettings(cmd *cobra.Command, args []string) error {
	// Help must still print when the config is broken.
	if !cmd.HasParent() || cmd.Name() == "help" {
		return nil
	}
	s, err := config.Resolve(fileFlag)
	if err != nil {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("loading config: %w", err)}
	}
	if verbose {
		s.LogLevel = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: s.LogLevel})
	slog.SetDefault(slog.New(handler))
	slog.Debug("settings resolved", "file", s.SnippetsFile, "removal", s.Removal, "index", s.IndexPath)

	settings = s
	return nil
}

// reservedCommands always run as subcommands. Every other word is a
// snippet lookup unless it names a subcommand that can take the given
// arguments and no snippet of that name exists.
var reservedCommands = map[string]bool{
	"help":   true,
	"list":   true,
	"add":    true,
	"set":    true,
	"remove": true,
}

// commandDispatcher returns the dispatch function normalizeArgs uses for
// the raw command line args.
func commandDispatcher(args []string) func(string, []string) bool {
	return func(word string, rest []string) bool {
		if reservedCommands[word] {
			return true
		}
		cmd := lookupCommand(word)
		if cmd == nil {
			return false
		}
		if cmd.Args != nil && cmd.Args(cmd, positionalArgs(cmd, rest)) != nil {
			return false
		}
		if cmd == findCmd {
			return true
		}
		return !snippetExists(fileArg(args), word)
	}
}

// lookupCommand returns the root subcommand called name, or nil.
func lookupCommand(name string) *cobra.Command {
	for _, c := range rootCmd.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// positionalArgs drops flags and their values from args as cmd would parse
// them.
func positionalArgs(cmd *cobra.Command, args []string) []string {
	var out []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(out, args[i+1:]...)
		}
		if len(arg) < 2 || arg[0] != '-' {
			out = append(out, arg)
			continue
		}
		if strings.Contains(arg, "=") {
			continue
		}
		if flagTakesValue(cmd, arg) {
			i++
		}
	}
	return out
}

// flagTakesValue reports whether arg is a flag of cmd that consumes the
// next argument.
func flagTakesValue(cmd *cobra.Command, arg string) bool {
	var f *pflag.Flag
	for _, fs := range []*pflag.FlagSet{cmd.Flags(), cmd.InheritedFlags()} {
		if strings.HasPrefix(arg, "--") {
			f = fs.Lookup(arg[2:])
		} else if len(arg) == 2 {
			f = fs.ShorthandLookup(arg[1:])
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

// snippetExists reports whether the store selected by file (or the
// configured default) holds a snippet called name.
func snippetExists(file, name string) bool {
	s, err := config.Resolve(file)
	if err != nil {
		return false
	}
	values, _ := store.NewStore(s.SnippetsFile, s.Removal).Find(name)
	return len(values) > 0
}

// commandLabel names cmd the way the user typed it.
func commandLabel(cmd *cobra.Command) string {
	if invokedAs != "" && commandAliases[invokedAs] == cmd.Name() {
		return invokedAs
	}
	return cmd.Name()
}

// openStore returns the store for the resolved settings.
func openStore() *store.Store {
	s := store.NewStore(settings.SnippetsFile, settings.Removal)
	slog.Debug("store opened", "path", s.Path(), "removal", s.Removal())
	return s
}

// exitError carries a non-default exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// argsExactly returns a validator that reports a usage error unless
// exactly n arguments are given.
func argsExactly(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return wrongNumberOfArguments(commandLabel(cmd))
		}
		return nil
	}
}

// argsAtMost returns a validator that reports a usage error when more than
// n arguments are given.
func argsAtMost(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			return wrongNumberOfArguments(commandLabel(cmd))
		}
		return nil
	}
}

// argsAtLeast returns a validator that reports a usage error when fewer
// than n arguments are given.
func argsAtLeast(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return wrongNumberOfArguments(commandLabel(cmd))
		}
		return nil
	}
}
