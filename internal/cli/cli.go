package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ChristosMaragkos/ItemFactory/internal/app"
	"github.com/ChristosMaragkos/ItemFactory/internal/registry"
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

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("itemfactory", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
ItemFactory - A content registry for game mods.

Usage:
  itemfactory [options] [CONTENT_PATH]

Arguments:
  CONTENT_PATH
    Path to a single .hcl content manifest or a directory containing them.

Options:
`)
		flagSet.PrintDefaults()
	}

	contentFlag := flagSet.String("content", "", "Path to the content manifest file or directory.")
	cFlag := flagSet.String("c", "", "Path to the content manifest file or directory (shorthand).")
	policyFlag := flagSet.String("conflict-policy", "keep-existing", "How identifier collisions are resolved. Options: 'keep-existing', 'overwrite', 'remove-both'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *contentFlag != "" {
		path = *contentFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Content path determined.", "path", path)

	if path == "" {
		slog.Debug("No content path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	if _, err := registry.ParsePolicy(*policyFlag); err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid conflict-policy: must be 'keep-existing', 'overwrite', or 'remove-both'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ContentPath:    path,
		ConflictPolicy: *policyFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
