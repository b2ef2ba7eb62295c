// Command generate_sql renders the Snowpipe deployment
// SQL files from a KEY=VALUE configuration file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	json "github.com/goccy/go-json"

	"github.com/byte4ever/snowpipe_sqlgen/generator"
)

func run(args []string, stdout io.Writer) error {
	const errCtx = "generate_sql"

	var (
		configPath string
		outDir     string
		asJSON     bool
	)

	fs := flag.NewFlagSet(errCtx, flag.ContinueOnError)

	fs.StringVar(
		&configPath, "config", "config.env",
		"KEY=VALUE configuration file",
	)

	fs.StringVar(
		&outDir, "out_dir", ".",
		"directory receiving the generated SQL files",
	)

	fs.BoolVar(
		&asJSON, "json", false,
		"print the final report as JSON",
	)

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	report, err := generator.Generate(generator.Config{
		ConfigPath: configPath,
		OutDir:     outDir,
		Logger:     slog.Default(),
	})
	if errors.Is(err, generator.ErrConfigNotFound) {
		_, _ = fmt.Fprintf( //nolint:errcheck // console hint
			stdout,
			"copy config.env.example to %s and fill in the variables\n",
			configPath,
		)
	}

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
		"\n%d SQL files generated\n"+
			"next steps:\n"+
			"  1. run deploy_snowpipe.sql in Snowflake\n"+
			"  2. configure the Azure Event Grid subscription\n"+
			"  3. run clean_generated_files when done\n",
		len(report.Files),
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
