package dailynote

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/markdown"
)

// SectionHeading is the note section owned by dailylog.
const SectionHeading = "## Development Work"

// Action says what Merge did to the note.
type Action string

const (
	Created Action = "created"
	Updated Action = "updated"
)

// Outcome describes a completed merge.
type Outcome struct {
	Path   string
	Action Action
}

// Section returns the full section text for a rendered body.
func Section(body string) string {
	return SectionHeading + "\n\n" + body
}

// Merge writes body into the Development Work section of the note at path,
// creating the note from the daily template when it does not exist.
func Merge(path, body string, date time.Time) (Outcome, error) {
	section := Section(body)

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return Outcome{}, fmt.Errorf("failed to read daily note: %w", err)
	}

	if err == nil {
		content := MergeContent(string(existing), section)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return Outcome{}, fmt.Errorf("failed to write daily note: %w", err)
		}
		return Outcome{Path: path, Action: Updated}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return Outcome{}, fmt.Errorf("failed to create note directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(NewNote(date, section)), 0644); err != nil {
		return Outcome{}, fmt.Errorf("failed to write daily note: %w", err)
	}
	return Outcome{Path: path, Action: Created}, nil
}

// MergeContent replaces the Development Work section of content with section,
// or appends section after one blank line when content has none. Blank lines
// separating the old section from the next heading are kept.
func MergeContent(content, section string) string {
	if sec, ok := markdown.FindSection(content, SectionHeading); ok {
		end := sec.End
		for end > sec.BodyStart && content[end-1] == '\n' {
			end--
		}
		return content[:sec.Start] + section + content[end:]
	}

	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return section + "\n"
	}
	return trimmed + "\n\n" + section + "\n"
}

// NewNote renders a fresh daily note containing section.
func NewNote(date time.Time, section string) string {
	return fmt.Sprintf(`# %s - %s

## Daily Review

### What went well today?


### What could be improved?


### Tomorrow's priorities


%s

## Meeting Notes


## Other Notes

`, date.Format("2006-01-02"), date.Weekday(), section)
}
