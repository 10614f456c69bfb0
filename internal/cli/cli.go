// Package cli parses command-line arguments into an app.Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/theoremgo/internal/app"
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

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("theoremgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
theoremgo - numbers theorem-like blocks and orders environment declarations.

Usage:
  theoremgo [options] [DOCUMENT_PATH]

Arguments:
  DOCUMENT_PATH
    Path to the .hcl document event file to export.

Options:
`)
		flagSet.PrintDefaults()
	}

	envFlag := flagSet.String("environments", "", "Path to the environment .hcl file or directory.")
	eFlag := flagSet.String("e", "", "Path to the environment .hcl file or directory (shorthand).")
	docFlag := flagSet.String("document", "", "Path to the document event file.")
	backendFlag := flagSet.String("backend", "latex", "Output backend. Options: 'latex' or 'markdown'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	docPath := *docFlag
	if docPath == "" && flagSet.NArg() > 0 {
		docPath = flagSet.Arg(0)
	}

	envPath := *envFlag
	if envPath == "" {
		envPath = *eFlag
	}

	if docPath == "" || envPath == "" {
		slog.Debug("Missing required paths, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
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
		EnvironmentsPath: envPath,
		DocumentPath:     docPath,
		Backend:          strings.ToLower(*backendFlag),
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
