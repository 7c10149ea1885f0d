package accomplishments

import (
	"strings"
	"time"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/markdown"
)

// SectionHeading opens the section that holds accomplishment entries.
const SectionHeading = "## Recent Accomplishments"

// ParseSection extracts the records dated target from the accomplishments
// section of doc. The section ends at the next line starting with "##",
// subheadings included. A document without the section yields no records.
func ParseSection(project, doc string, target time.Time) []Record {
	sec, ok := markdown.FindPrefixSection(doc, SectionHeading, "##")
	if !ok {
		return nil
	}

	var records []Record
	current := -1

	for _, raw := range strings.Split(sec.Body(doc), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		parsed := ClassifyLine(line)
		switch parsed.Kind {
		case DateEntry:
			date, err := ParseDate(parsed.DateToken)
			if err != nil {
				// Prose that merely looks like a date; leave the open entry alone.
				continue
			}
			if !SameDay(date, target) {
				current = -1
				continue
			}
			records = append(records, Record{
				Project: project,
				Date:    date,
				Summary: parsed.Text,
				Details: []string{},
			})
			current = len(records) - 1

		case DetailLine:
			if current >= 0 {
				records[current].Details = append(records[current].Details, parsed.Text)
			}
		}
	}

	return records
}
