package accomplishments

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSONShape(t *testing.T) {
	t.Parallel()

	records := []Record{{Project: "alpha", Date: day(t, "2025-01-15"), Summary: "did X"}}

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, records, FormatJSON))

	var raw []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, "alpha", raw[0]["project"])
	assert.Equal(t, "2025-01-15", raw[0]["date"])
	assert.Equal(t, "did X", raw[0]["content"])
	assert.Equal(t, []any{}, raw[0]["details"])
	assert.Contains(t, buf.String(), "\n  {\n    \"project\"")
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	records := []Record{
		{Project: "alpha", Date: day(t, "2025-01-15"), Summary: "did X", Details: []string{"d1"}},
		{Project: "beta", Date: day(t, "2025-01-15"), Summary: "did Y", Details: []string{}},
	}

	for _, name := range []string{"records.json", "records.yaml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, records))

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, records, loaded, name)
	}
}

func TestLoadSummaryAlias(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"project":"p","date":"2025-01-15","summary":"aliased","details":null}]`), 0644))

	records, err := Load(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "aliased", records[0].Summary)
}

func TestLoadRejectsBadDate(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"project":"p","date":"2025-13-01","content":"x"}]`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat("YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
