// Package cli turns levscore's command line into a validated Config.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is an error that carries the process exit code it maps to.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly (help was printed), or an *ExitError.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("levscore", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
levscore - score a guessed plaintext against a reference by edit distance.

Usage:
  levscore [options] < guess.txt

Options:
`)
		flagSet.PrintDefaults()
	}

	var cfg Config
	flagSet.StringVar(&cfg.File, "file", DefaultFile, "File from which to load the plaintext.")
	flagSet.StringVar(&cfg.File, "f", DefaultFile, "File from which to load the plaintext (shorthand).")
	flagSet.BoolVar(&cfg.NoColor, "nocolor", false, "Disable color output.")
	flagSet.BoolVar(&cfg.NoColor, "n", false, "Disable color output (shorthand).")
	flagSet.StringVar(&cfg.Report, "report", "", "Also write a PDF report of the comparison to this path.")
	flagSet.StringVar(&cfg.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flagSet.StringVar(&cfg.LogLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", flagSet.Arg(0))}
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	config, err := NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}
