// Command levscore compares a guessed plaintext, read as one line from
// standard input, against a reference file and prints how correct the guess
// is as a percentage derived from the Levenshtein distance.
//
// Usage:
//
//	echo "sitting" | levscore -f plaintext.txt
//	levscore --nocolor --report score.pdf
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ughe/levscore/editdist"
	"github.com/ughe/levscore/internal/cli"
	"github.com/ughe/levscore/internal/ctxlog"
	"github.com/ughe/levscore/internal/output"
	"github.com/ughe/levscore/internal/report"
	"github.com/ughe/levscore/util"
)

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, output.TerminalSupportsColor(os.Stdout))
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the whole program minus process control. colorCapable tells
// whether stdout can show colors at all; --nocolor can only turn them off.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, colorCapable bool) error {
	cfg, shouldExit, err := cli.Parse(args, stdout)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg, stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Configuration parsed.", "file", cfg.File, "nocolor", cfg.NoColor, "report", cfg.Report)

	p := output.New(stdout, colorCapable && !cfg.NoColor)
	return score(ctx, cfg, p, stdin)
}

func score(ctx context.Context, cfg *cli.Config, p *output.Printer, stdin io.Reader) error {
	logger := ctxlog.FromContext(ctx)
	quoted := strconv.Quote(cfg.File)

	p.Printf("Reading plaintext from %s\n", p.Green(quoted))
	reference, err := util.ReadReference(cfg.File)
	if errors.Is(err, util.ErrFileNotFound) {
		p.Printf("Error: Plaintext file %s doesn't exist.\n", p.Red(quoted))
		return &cli.ExitError{Code: 1}
	}
	if err != nil {
		return &cli.ExitError{Code: 1, Message: "Error: " + err.Error()}
	}
	refLen := len([]rune(reference))
	logger.Debug("Reference loaded.", "file", cfg.File, "runes", refLen)
	p.Printf("Plaintext:\n%s\n", p.Blue(reference))

	p.Println("Enter the guessed plaintext followed by a newline:")
	guess, err := util.ReadLine(stdin)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: "Error: " + err.Error()}
	}
	logger.Debug("Guess read.", "runes", len([]rune(guess)))
	p.Printf("\nGuessed plaintext:\n%s\n", p.Green(guess))

	dist := editdist.Levenshtein(reference, guess)
	correct, err := editdist.Correctness(dist, refLen)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: "Error: " + err.Error()}
	}
	logger.Debug("Distance computed.", "distance", dist, "score", float64(correct))
	p.Printf("Correctness: %s\n", p.Score(correct))

	if cfg.Report != "" {
		r := report.Result{
			Path:      cfg.File,
			Reference: reference,
			Guess:     guess,
			Distance:  dist,
			Score:     correct,
		}
		if err := report.WritePDF(cfg.Report, r); err != nil {
			return &cli.ExitError{Code: 1, Message: fmt.Sprintf("Error: writing report %s: %v", cfg.Report, err)}
		}
		logger.Info("Report written.", "path", cfg.Report)
	}
	return nil
}
