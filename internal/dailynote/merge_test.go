package dailynote

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestMergeContentReplacesSection(t *testing.T) {
	t.Parallel()

	before := "# 2025-01-15\n\nintro\n"
	after := "## Other\nkeep me\n"
	content := before + "## Development Work\nold text\n" + after

	got := MergeContent(content, Section("new body"))

	assert.Equal(t, before+"## Development Work\n\nnew body\n"+after, got)
}

func TestMergeContentKeepsBlankLineBeforeNextHeading(t *testing.T) {
	t.Parallel()

	note := NewNote(testDate, Section("first"))
	got := MergeContent(note, Section("second"))

	assert.Equal(t, NewNote(testDate, Section("second")), got)
	assert.Equal(t, got, MergeContent(got, Section("second")))
}

func TestMergeContentAppends(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"ends with newline", "# Note\n\ntext\n"},
		{"no trailing newline", "# Note\n\ntext"},
		{"extra blank lines", "# Note\n\ntext\n\n\n"},
	}

	for _, tt := range tests {
		got := MergeContent(tt.content, Section("body"))
		assert.Equal(t, "# Note\n\ntext\n\n## Development Work\n\nbody\n", got, tt.name)
	}
}

func TestMergeContentEmptyFile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "## Development Work\n\nbody\n", MergeContent("", Section("body")))
}

func TestMergeCreatesNote(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "Daily Notes", "2025", "01-January", "2025-01-15.md")

	out, err := Merge(path, "### [[alpha]]\n- did X", testDate)
	require.NoError(t, err)
	assert.Equal(t, Created, out.Action)
	assert.Equal(t, path, out.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "# 2025-01-15 - Wednesday\n"))
	assert.Contains(t, content, "## Daily Review\n")
	assert.Contains(t, content, "### Tomorrow's priorities\n")
	assert.Contains(t, content, "## Development Work\n\n### [[alpha]]\n- did X\n\n## Meeting Notes")
	assert.Contains(t, content, "## Other Notes\n")
}

func TestMergeUpdatesNote(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "note.md")

	original := "# Custom\n\n## Development Work\nstale\n## Journal\nprivate thoughts\n"
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	out, err := Merge(path, "fresh", testDate)
	require.NoError(t, err)
	assert.Equal(t, Updated, out.Action)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Custom\n\n## Development Work\n\nfresh\n## Journal\nprivate thoughts\n", string(data))
}

func TestMergeWriteFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	// A directory where the note should be makes both read and write fail.
	path := filepath.Join(dir, "note.md")
	require.NoError(t, os.Mkdir(path, 0755))

	_, err := Merge(path, "x", testDate)
	assert.Error(t, err)
}
