package sqltemplates

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"
)

const manifestFile = "manifest.yaml"

//go:embed manifest.yaml templates/*.sql
var embedded embed.FS

// Template is a named SQL template. Name is also the
// output filename.
type Template struct {
	Name        string `yaml:"name"`
	Source      string `yaml:"source"`
	Description string `yaml:"description"`

	// Text is the template body read from Source.
	Text string `yaml:"-"`
}

// Manifest describes the fixed set of templates.
type Manifest struct {
	RequiredKeys []string   `yaml:"required_keys"`
	OptionalKeys []string   `yaml:"optional_keys"`
	Templates    []Template `yaml:"templates"`
	Aggregate    Template   `yaml:"aggregate"`
	Preserved    []string   `yaml:"preserved"`
}

// Load returns the embedded manifest with every template
// body loaded.
func Load() (*Manifest, error) {
	return LoadFS(embedded)
}

// LoadFS reads manifest.yaml and the templates it lists
// from fsys.
func LoadFS(fsys fs.FS) (*Manifest, error) {
	const errCtx = "loading sql templates"

	raw, err := fs.ReadFile(fsys, manifestFile)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var mf Manifest
	if err := yaml.Unmarshal(raw, &mf); err != nil {
		return nil, fmt.Errorf(
			"%s: decoding %s: %w",
			errCtx, manifestFile, err,
		)
	}

	if len(mf.Templates) == 0 {
		return nil, fmt.Errorf(
			"%s: no templates declared", errCtx,
		)
	}

	seen := make(map[string]struct{})

	for i := range mf.Templates {
		if err := mf.Templates[i].load(fsys, seen); err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	if err := mf.Aggregate.load(fsys, seen); err != nil {
		return nil, fmt.Errorf("%s: aggregate: %w", errCtx, err)
	}

	return &mf, nil
}

// OutputNames returns the per-purpose output filenames in
// render order. The aggregate is not included.
func (mf *Manifest) OutputNames() []string {
	names := make([]string, 0, len(mf.Templates))
	for _, tpl := range mf.Templates {
		names = append(names, tpl.Name)
	}

	return names
}

// All returns the per-purpose templates followed by the
// aggregate.
func (mf *Manifest) All() []Template {
	all := make([]Template, 0, len(mf.Templates)+1)
	all = append(all, mf.Templates...)

	return append(all, mf.Aggregate)
}

func (tpl *Template) load(
	fsys fs.FS,
	seen map[string]struct{},
) error {
	if tpl.Name == "" || tpl.Source == "" {
		return fmt.Errorf(
			"template %q: name and source are required",
			tpl.Name,
		)
	}

	if _, dup := seen[tpl.Name]; dup {
		return fmt.Errorf("duplicate template %q", tpl.Name)
	}

	seen[tpl.Name] = struct{}{}

	body, err := fs.ReadFile(fsys, tpl.Source)
	if err != nil {
		return fmt.Errorf("template %q: %w", tpl.Name, err)
	}

	tpl.Text = string(body)

	return nil
}
