package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/vk/lantern/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flagFields maps flag names to the configuration fields they set.
var flagFields = map[string]string{
	"output":      app.FieldOutput,
	"format":      app.FieldFormat,
	"graph-name":  app.FieldGraphName,
	"diagnostics": app.FieldDiagnostics,
	"color":       app.FieldColor,
	"style":       app.FieldStyle,
	"log-level":   app.FieldLogLevel,
	"log-format":  app.FieldLogFormat,
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("lantern", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	flagSet.Usage = func() {
		fmt.Fprint(output, `
Lantern - Recover the room graph of a text adventure from its MDL source.

Usage:
  lantern [options] [INPUT]

Arguments:
  INPUT
    Path to the MDL source file, or '-' to read standard input.

Options:
`)
		flagSet.PrintDefaults()
	}

	outputFlag := flagSet.StringP("output", "o", "", "Write the artifact to this file instead of stdout. 'default' picks data/<format>/zork.<ext>.")
	formatFlag := flagSet.StringP("format", "f", "lisp", "Output format. Options: 'lisp', 'json', 'dot'.")
	configFlag := flagSet.StringP("config", "c", "", "Run configuration file (.hcl, .yaml, .yml, .json, .jsonc).")
	graphNameFlag := flagSet.String("graph-name", "", "Name of the GraphViz digraph.")
	diagnosticsFlag := flagSet.Bool("diagnostics", false, "Trace form evaluation and unresolved references at debug level.")
	colorFlag := flagSet.String("color", "auto", "Highlight stdout output. Options: 'auto', 'always', 'never'.")
	styleFlag := flagSet.String("style", "", "Highlighting style (default monokai).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	setFlag := flagSet.StringArray("set", nil, "Seed a global value, NAME=VALUE. Integers stay numbers. Repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one input, got %d", flagSet.NArg())}
	}
	input := flagSet.Arg(0)
	if input == "" && *configFlag == "" {
		slog.Debug("No input provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	globals, err := parseGlobals(*setFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *pflag.Flag) {
		if field, ok := flagFields[f.Name]; ok {
			explicit[field] = true
		}
	})
	if input != "" {
		explicit[app.FieldInput] = true
	}
	slog.Debug("CLI parameter validation complete.", "explicit", len(explicit))

	config, err := app.NewConfig(app.Config{
		InputPath:   input,
		OutputPath:  *outputFlag,
		ConfigPath:  *configFlag,
		Format:      *formatFlag,
		GraphName:   *graphNameFlag,
		Diagnostics: *diagnosticsFlag,
		Color:       *colorFlag,
		Style:       *styleFlag,
		LogLevel:    *logLevelFlag,
		LogFormat:   *logFormatFlag,
		Globals:     globals,
		Explicit:    explicit,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "input", config.InputPath, "format", config.Format)
	return config, false, nil
}

// parseGlobals turns NAME=VALUE pairs into global values. A value that
// reads as a decimal integer becomes a number, anything else a string.
func parseGlobals(pairs []string) (map[string]any, error) {
	globals := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid --set %q: expected NAME=VALUE", pair)
		}
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			globals[name] = i
			continue
		}
		globals[name] = value
	}
	return globals, nil
}
