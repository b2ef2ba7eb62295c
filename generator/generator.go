package generator

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/byte4ever/snowpipe_sqlgen/config"
	"github.com/byte4ever/snowpipe_sqlgen/digester"
	"github.com/byte4ever/snowpipe_sqlgen/sqltemplates"
	"github.com/byte4ever/snowpipe_sqlgen/templating"
)

var (
	// ErrConfigNotFound is returned when the configuration
	// file is missing or holds no KEY=VALUE entry.
	ErrConfigNotFound = errors.New("configuration not found")

	// ErrMissingKeys matches any *MissingKeysError.
	ErrMissingKeys = errors.New("missing required keys")
)

// MissingKeysError lists the required keys absent from
// the configuration.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf(
		"%s: %s", ErrMissingKeys, strings.Join(e.Keys, ", "),
	)
}

// Is reports whether target is ErrMissingKeys.
func (e *MissingKeysError) Is(target error) bool {
	return target == ErrMissingKeys
}

// Config holds the settings of a Generate run.
type Config struct {
	// ConfigPath is the KEY=VALUE configuration file.
	ConfigPath string

	// OutDir receives the rendered files.
	OutDir string

	// Manifest overrides the embedded template catalog.
	Manifest *sqltemplates.Manifest

	// Logger receives progress messages. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// FileResult describes one rendered file.
type FileResult struct {
	Name       string   `json:"name"`
	Path       string   `json:"path"`
	Changed    bool     `json:"changed"`
	Unresolved []string `json:"unresolved,omitempty"`
}

// Report summarizes a successful Generate run.
type Report struct {
	ConfigPath string       `json:"config_path"`
	Files      []FileResult `json:"files"`
}

// Generate validates the configuration and renders every
// template of the manifest into cfg.OutDir, overwriting
// existing files.
func Generate(cfg Config) (*Report, error) {
	const errCtx = "generating sql"

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mf := cfg.Manifest
	if mf == nil {
		var err error

		mf, err = sqltemplates.Load()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	mapping, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	if len(mapping) == 0 {
		return nil, fmt.Errorf(
			"%s: %s: %w",
			errCtx, cfg.ConfigPath, ErrConfigNotFound,
		)
	}

	if missing := mapping.Missing(mf.RequiredKeys); len(missing) > 0 {
		return nil, fmt.Errorf(
			"%s: %w",
			errCtx, &MissingKeysError{Keys: missing},
		)
	}

	logger.Info(
		"configuration loaded",
		"path", cfg.ConfigPath,
		"keys", len(mapping),
	)

	en := templating.Engine{}
	report := &Report{ConfigPath: cfg.ConfigPath}

	for _, tpl := range mf.All() {
		res, err := renderFile(logger, &en, cfg.OutDir, tpl, mapping)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		if len(res.Unresolved) > 0 {
			logger.Warn(
				"unresolved placeholders kept",
				"file", res.Path,
				"placeholders", strings.Join(res.Unresolved, ","),
			)
		}

		logger.Info(
			"generated",
			"file", res.Path,
			"changed", res.Changed,
		)

		report.Files = append(report.Files, res)
	}

	return report, nil
}

// renderFile renders tpl and writes it to outDir/tpl.Name.
func renderFile(
	logger *slog.Logger,
	en *templating.Engine,
	outDir string,
	tpl sqltemplates.Template,
	mapping config.Mapping,
) (FileResult, error) {
	const errCtx = "rendering file"

	res := FileResult{
		Name:       tpl.Name,
		Path:       filepath.Join(outDir, tpl.Name),
		Unresolved: en.Unresolved(tpl.Text, mapping),
	}

	content := en.Render(tpl.Text, mapping)

	// An unreadable output is still overwritten; only the
	// write decides the outcome.
	same, err := digester.Matches(res.Path, content)
	if err != nil {
		logger.Warn(
			"cannot compare previous output",
			"file", res.Path,
			"error", err,
		)
	}

	res.Changed = !same

	if err := os.WriteFile( //nolint:gosec // path built from fixed names
		res.Path, []byte(content), 0o666,
	); err != nil {
		return res, fmt.Errorf(
			"%s: %s: %w", errCtx, tpl.Name, err,
		)
	}

	return res, nil
}
