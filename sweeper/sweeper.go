package sweeper

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Config holds the settings of a Sweep run.
type Config struct {
	// Dir holds the generated files.
	Dir string

	// Files are the names to remove, relative to Dir.
	Files []string

	// Preserved is copied into the report to remind the
	// operator which files are intentionally kept.
	Preserved []string

	// Logger receives progress messages. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Report summarizes a Sweep run.
type Report struct {
	Removed   []string `json:"removed"`
	Missing   []string `json:"missing"`
	Preserved []string `json:"preserved"`
}

// Sweep deletes every regular file of cfg.Files present
// in cfg.Dir. Missing files are not an error. Directories,
// symlinks and other removal failures are joined into the
// returned error after every name has been visited.
func Sweep(cfg Config) (*Report, error) {
	const errCtx = "sweeping generated files"

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	report := &Report{Preserved: cfg.Preserved}

	var errs []error

	for _, name := range cfg.Files {
		pa := filepath.Join(cfg.Dir, name)

		fi, err := os.Lstat(pa)

		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Info("not found", "file", pa)

			report.Missing = append(report.Missing, name)

			continue
		case err == nil && !fi.Mode().IsRegular():
			err = fmt.Errorf("%s: not a regular file", pa)
		case err == nil:
			err = os.Remove(pa)
		}

		if err != nil {
			logger.Error("remove failed", "file", pa, "error", err)

			errs = append(errs, err)

			continue
		}

		logger.Info("removed", "file", pa)

		report.Removed = append(report.Removed, name)
	}

	if err := errors.Join(errs...); err != nil {
		return report, fmt.Errorf("%s: %w", errCtx, err)
	}

	return report, nil
}
