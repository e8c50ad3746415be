package main

import (
	"fmt"
	"strings"
)

// commandAliases maps the flag-style command spellings to subcommands.
var commandAliases = map[string]string{
	"--help":   "help",
	"-h":       "help",
	"--list":   "list",
	"-l":       "list",
	"--add":    "add",
	"-a":       "add",
	"--set":    "set",
	"-s":       "set",
	"--remove": "remove",
	"-r":       "remove",
}

// globalFlags lists root flags that may precede the command, and whether
// each takes a separate value argument.
var globalFlags = map[string]bool{
	"--json":    false,
	"--verbose": false,
	"-v":        false,
	"--version": false,
	"--file":    true,
	"-f":        true,
}

// usageError is a command-line mistake. It is reported on stdout and the
// process still exits normally.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func unknownCommand(arg string) error {
	return &usageError{msg: fmt.Sprintf("unknown command %s, check --help for usage", arg)}
}

func wrongNumberOfArguments(command string) error {
	return &usageError{msg: fmt.Sprintf("Wrong number of arguments for %s, check --help for usage", command)}
}

// normalizeArgs rewrites the flag-style command forms (`-a name value`) and
// the bare-name lookup (`snip name`) into subcommand invocations that Cobra
// can dispatch. Leading global flags are passed through untouched. It also
// returns the command word as typed, for use in usage messages.
//
// Flag-style forms get a `--` after the command so that values starting with
// a dash are taken literally. dispatch decides whether a word that names a
// subcommand runs it or is looked up as a snippet instead.
func normalizeArgs(args []string, dispatch func(word string, rest []string) bool) ([]string, string, error) {
	i := 0
	for i < len(args) {
		name, _, hasValue := strings.Cut(args[i], "=")
		takesValue, ok := globalFlags[name]
		if !ok {
			break
		}
		i++
		if takesValue && !hasValue {
			i++
		}
	}
	if i >= len(args) {
		return args, "", nil
	}

	prefix := args[:i:i]
	first := args[i]
	rest := args[i+1:]

	if cmd, ok := commandAliases[first]; ok {
		out := append(prefix, cmd)
		if cmd == "help" {
			return out, first, nil
		}
		out = append(out, "--")
		return append(out, rest...), first, nil
	}

	if first == "--" {
		if len(rest) == 0 {
			return nil, first, unknownCommand(first)
		}
		return append(prefix, "find", "--", rest[0]), first, nil
	}

	if dispatch(first, rest) {
		return args, first, nil
	}

	if strings.HasPrefix(first, "-") {
		return nil, first, unknownCommand(first)
	}

	// Only flags, and the values of global flags that take one, are carried
	// over to the bare-name lookup; extra words are ignored.
	out := append(prefix, "find", first)
	for j := 0; j < len(rest); j++ {
		arg := rest[j]
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		out = append(out, arg)
		name, _, hasValue := strings.Cut(arg, "=")
		if globalFlags[name] && !hasValue && j+1 < len(rest) {
			j++
			out = append(out, rest[j])
		}
	}
	return out, first, nil
}

// fileArg returns the value of the last --file/-f flag in args, or "".
func fileArg(args []string) string {
	var file string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			break
		}
		name, value, hasValue := strings.Cut(args[i], "=")
		if name != "--file" && name != "-f" {
			continue
		}
		if hasValue {
			file = value
		} else if i+1 < len(args) {
			i++
			file = args[i]
		}
	}
	return file
}
