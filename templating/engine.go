package templating

import (
	"io"

	"github.com/valyala/fasttemplate"
)

// Engine renders templates against a set of variables.
type Engine struct {
	StartTag string
	EndTag   string
}

// Render substitutes vars into tpl. Unknown placeholders
// are preserved as-is.
func (en *Engine) Render(
	tpl string,
	vars map[string]string,
) string {
	startTag, endTag := en.tags()

	return fasttemplate.ExecuteStringStd(
		tpl, startTag, endTag, toContext(vars),
	)
}

// Placeholders lists the distinct tag names referenced by
// tpl, in order of first appearance.
func (en *Engine) Placeholders(tpl string) []string {
	startTag, endTag := en.tags()

	var names []string

	seen := make(map[string]struct{})

	fasttemplate.ExecuteFuncString(
		tpl, startTag, endTag,
		func(_ io.Writer, tag string) (int, error) {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				names = append(names, tag)
			}

			return 0, nil
		},
	)

	return names
}

// Unresolved lists the placeholders of tpl that have no
// value in vars and would survive rendering.
func (en *Engine) Unresolved(
	tpl string,
	vars map[string]string,
) []string {
	var missing []string

	for _, name := range en.Placeholders(tpl) {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}

	return missing
}

// tags returns the configured start/end tags, falling
// back to shell-style defaults.
func (en *Engine) tags() (string, string) {
	startTag := en.StartTag
	if startTag == "" {
		startTag = "${"
	}

	endTag := en.EndTag
	if endTag == "" {
		endTag = "}"
	}

	return startTag, endTag
}

func toContext(vars map[string]string) map[string]interface{} {
	ctx := make(map[string]interface{}, len(vars))
	for key, val := range vars {
		ctx[key] = val
	}

	return ctx
}
