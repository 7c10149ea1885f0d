package accomplishments

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/JonathanPhillips/obsidian-automation-scripts/pkg/types"
)

// Format selects the interchange encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q: must be 'json' or 'yaml'", s)
}

// FormatForPath picks the format from a file extension, defaulting to JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatJSON
}

// Encode writes records to w in the given format.
func Encode(w io.Writer, records []Record, format Format) error {
	out := make([]types.AccomplishmentRecord, 0, len(records))
	for _, r := range records {
		out = append(out, r.Interchange())
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode records: %w", err)
		}
		return nil
	}
}

// Save writes records to path, choosing the format from its extension.
func Save(path string, records []Record) error {
	return SaveAs(path, records, FormatForPath(path))
}

// SaveAs writes records to path in the given format.
func SaveAs(path string, records []Record, format Format) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Encode(f, records, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads records previously written by Save.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var in []types.AccomplishmentRecord
	switch FormatForPath(path) {
	case FormatYAML:
		err = yaml.Unmarshal(data, &in)
	default:
		err = json.Unmarshal(data, &in)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	records := make([]Record, 0, len(in))
	for _, r := range in {
		rec, err := FromInterchange(r)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
