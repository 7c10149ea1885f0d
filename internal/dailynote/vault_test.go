package dailynote

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandTemplate(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		format string
		want   string
	}{
		{"Daily Notes/{year}/{month}-{month_name}/{year}-{month}-{day}", "Daily Notes/2025/03-March/2025-03-07"},
		{"Daily Notes/{year}/{month:02d}-{month_name}/{year}-{month:02d}-{day:02d}", "Daily Notes/2025/03-March/2025-03-07"},
		{"journal/{year}{month}{day}", "journal/20250307"},
		{"flat", "flat"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExpandTemplate(tt.format, date), tt.format)
	}
}

func TestNotePath(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	v, err := OpenVault(root, "Daily Notes/{year}/{month}-{month_name}/{year}-{month}-{day}")
	require.NoError(t, err)

	date := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	want := filepath.Join(root, "Daily Notes", "2025", "01-January", "2025-01-15.md")
	assert.Equal(t, want, v.NotePath(date))
}

func TestOpenVaultMissing(t *testing.T) {
	t.Parallel()

	_, err := OpenVault(filepath.Join(t.TempDir(), "missing"), "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVaultNotFound))
}

func TestOpenVaultNotDirectory(t *testing.T) {
	t.Parallel()
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := OpenVault(file, "x")
	assert.True(t, errors.Is(err, ErrVaultNotFound))
}
