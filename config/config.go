package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Mapping holds configuration values keyed by name.
type Mapping map[string]string

// Load reads the configuration file at path. Surrounding
// whitespace is trimmed from keys and values. A file that
// does not exist produces an empty Mapping and no error.
func Load(path string) (Mapping, error) {
	const errCtx = "loading config"

	mapping := make(Mapping)

	content, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if errors.Is(err, os.ErrNotExist) {
		return mapping, nil
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		mapping[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return mapping, nil
}

// Missing returns the keys absent from the mapping, in
// the order given. Only presence is checked; a key with
// an empty value is not missing.
func (m Mapping) Missing(keys []string) []string {
	var missing []string

	for _, key := range keys {
		if _, ok := m[key]; !ok {
			missing = append(missing, key)
		}
	}

	return missing
}
