// Command clean_generated_files deletes the per-purpose
// SQL files written by generate_sql, keeping templates,
// configuration and documentation.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/snowpipe_sqlgen/sqltemplates"
	"github.com/byte4ever/snowpipe_sqlgen/sweeper"
)

func run(args []string, stdout io.Writer) error {
	const errCtx = "clean_generated_files"

	var (
		dir    string
		asJSON bool
	)

	fs := flag.NewFlagSet(errCtx, flag.ContinueOnError)

	fs.StringVar(
		&dir, "dir", ".",
		"directory holding the generated SQL files",
	)

	fs.BoolVar(
		&asJSON, "json", false,
		"print the final report as JSON",
	)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	mf, err := sqltemplates.Load()
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	report, err := sweeper.Sweep(sweeper.Config{
		Dir:       dir,
		Files:     mf.OutputNames(),
		Preserved: mf.Preserved,
		Logger:    slog.Default(),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")

		if err := enc.Encode(report); err != nil {
			return fmt.Errorf(
				"%s: encoding report: %w", errCtx, err,
			)
		}

		return nil
	}

	_, err = fmt.Fprintf(
		stdout,
		"\ncleanup done: %d files removed\nkept:\n  - %s\n",
		len(report.Removed),
		strings.Join(report.Preserved, "\n  - "),
	)
	if err != nil {
		return fmt.Errorf("%s: writing summary: %w", errCtx, err)
	}

	return nil
}

func main() {
	slog.SetDefault(slog.New(
		slog.NewTextHandler(os.Stdout, nil),
	))

	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
