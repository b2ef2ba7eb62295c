package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/snowpipe_sqlgen/config"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

func TestLoad_parses_key_values(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "config.env",
		"SNOWFLAKE_USER=alice\nAZURE_CONTAINER=mycontainer\n",
	)

	got, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(
		t,
		config.Mapping{
			"SNOWFLAKE_USER":  "alice",
			"AZURE_CONTAINER": "mycontainer",
		},
		got,
	)
}

func TestLoad_missing_file_returns_empty_mapping(t *testing.T) {
	t.Parallel()

	got, err := config.Load(
		filepath.Join(t.TempDir(), "config.env"),
	)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoad_skips_comments_and_blank_lines(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "config.env",
		"# credentials\n\n   \n  # indented comment=x\nKEY=value\n",
	)

	got, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(t, config.Mapping{"KEY": "value"}, got)
}

func TestLoad_trims_keys_and_values(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "config.env",
		"  TASK_NAME  =   load_station_task \r\n",
	)

	got, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(
		t,
		"load_station_task",
		got["TASK_NAME"],
	)
}

func TestLoad_splits_on_first_equals(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "config.env",
		"AZURE_SAS_TOKEN=sv=2022-11-02&sig=abc==\n",
	)

	got, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(
		t,
		"sv=2022-11-02&sig=abc==",
		got["AZURE_SAS_TOKEN"],
	)
}

func TestLoad_skips_lines_without_equals(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "config.env",
		"GOOD=1\nBADLINE\nALSO_GOOD=2\n",
	)

	got, err := config.Load(pa)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got["GOOD"])
	assert.Equal(t, "2", got["ALSO_GOOD"])
}

func TestLoad_keeps_empty_values(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(t, dir, "config.env", "EMPTY=\n")

	got, err := config.Load(pa)

	require.NoError(t, err)

	val, ok := got["EMPTY"]
	assert.True(t, ok)
	assert.Empty(t, val)
}

func TestLoad_later_key_overrides_earlier(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	pa := writeTemp(
		t, dir, "config.env",
		"VER=1.0\nVER=2.0\n",
	)

	got, err := config.Load(pa)

	require.NoError(t, err)
	assert.Equal(t, "2.0", got["VER"])
}

func TestLoad_directory_path_fails(t *testing.T) {
	t.Parallel()

	_, err := config.Load(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestMapping_Missing(t *testing.T) {
	t.Parallel()

	mapping := config.Mapping{
		"A": "1",
		"C": "",
	}

	assert.Equal(
		t,
		[]string{"B", "D"},
		mapping.Missing([]string{"A", "B", "C", "D"}),
	)
}

func TestMapping_Missing_none(t *testing.T) {
	t.Parallel()

	mapping := config.Mapping{"A": "1"}

	assert.Empty(t, mapping.Missing([]string{"A"}))
}

func FuzzLoad(f *testing.F) {
	f.Add("KEY=value\n")
	f.Add("# comment\n\nKEY = value = more\n")
	f.Add("=\n")
	f.Add("noequals\n")
	f.Add("  A=1\r\nB=2")

	f.Fuzz(func(t *testing.T, content string) {
		dir := t.TempDir()
		pa := filepath.Join(dir, "config.env")

		if err := os.WriteFile(
			pa, []byte(content), 0o600,
		); err != nil {
			return
		}

		got, err := config.Load(pa)
		require.NoError(t, err)

		for key, val := range got {
			assert.Equal(t, key, strings.TrimSpace(key))
			assert.Equal(t, val, strings.TrimSpace(val))
			assert.False(t, strings.HasPrefix(key, "#"))
		}
	})
}
