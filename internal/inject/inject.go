// Package inject adds the accomplishment logging sections to project log
// files that do not have them yet.
package inject

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/accomplishments"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/logging"
)

// GuidelinesHeading opens the logging guidelines section.
const GuidelinesHeading = "## Accomplishment Logging Guidelines"

// AccomplishmentSection returns the section inserted into a log file, seeded
// with one entry dated today.
func AccomplishmentSection(today time.Time) string {
	return accomplishments.SectionHeading + `

*Log major tasks, features, and fixes with timestamps for daily log automation*

- ` + today.Format(accomplishments.DateLayout) + `: Added accomplishment logging framework to CLAUDE.md
`
}

// GuidelinesSection is appended to log files without logging guidelines.
const GuidelinesSection = GuidelinesHeading + `

When working on this project, Claude Code should update the "Recent Accomplishments" section with:
- Date in YYYY-MM-DD format
- Brief description of what was accomplished
- File references when relevant (e.g., "Fixed bug in parser.py:45")
- Commit hashes for significant changes
- Deployment or release information
`

// HasAccomplishmentSection reports whether content mentions the
// accomplishments heading anywhere, including "### Recent Accomplishments"
// or a heading with a suffix.
func HasAccomplishmentSection(content string) bool {
	return strings.Contains(content, accomplishments.SectionHeading)
}

// Apply returns content with the logging sections added, and whether
// anything changed. Content that already has the accomplishments section is
// returned untouched. Lines are joined back as they were split, so a file
// ending in a newline gets an extra blank line before appended text.
func Apply(content string, today time.Time) (string, bool) {
	if HasAccomplishmentSection(content) {
		return content, false
	}

	lines := strings.Split(content, "\n")

	// Insert before the first level-two heading past the title block.
	insertAt := len(lines)
	for i, line := range lines {
		if strings.HasPrefix(line, "## ") && i > 3 {
			insertAt = i
			break
		}
	}

	out := make([]string, 0, len(lines)+4)
	out = append(out, lines[:insertAt]...)
	out = append(out, "", AccomplishmentSection(today))
	out = append(out, lines[insertAt:]...)

	if !strings.Contains(content, GuidelinesHeading) {
		out = append(out, "", GuidelinesSection)
	}

	return strings.Join(out, "\n"), true
}

// UpdateFile applies the logging sections to the file at path.
func UpdateFile(path string, today time.Time) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated, changed := Apply(string(content), today)
	if !changed {
		return false, nil
	}

	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}

// Result summarises a Run.
type Result struct {
	Files   []string
	Updated []string
	Failed  []string
}

// Run updates every log file the extractor finds below root. A file that
// fails is logged and recorded in Result.Failed; the run continues.
func Run(ex *accomplishments.Extractor, root string, today time.Time, logger *zap.Logger) (*Result, error) {
	logger = logging.OrNop(logger)

	files, err := ex.FindLogFiles(root)
	if err != nil {
		return nil, err
	}

	res := &Result{Files: files}
	for _, path := range files {
		changed, err := UpdateFile(path, today)
		if err != nil {
			logger.Warn("failed to update log file", zap.String("path", path), zap.Error(err))
			res.Failed = append(res.Failed, path)
			continue
		}
		if changed {
			logger.Debug("added accomplishment section", zap.String("path", path))
			res.Updated = append(res.Updated, path)
		}
	}

	return res, nil
}
