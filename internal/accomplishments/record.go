package accomplishments

import (
	"fmt"
	"time"

	"github.com/JonathanPhillips/obsidian-automation-scripts/pkg/types"
)

// DateLayout is the only accepted date token format.
const DateLayout = "2006-01-02"

// Record is one accomplishment entry for a project on a date.
type Record struct {
	Project string
	Date    time.Time
	Summary string
	Details []string
}

// ParseDate parses a YYYY-MM-DD token, rejecting impossible calendar dates.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// OnDate returns the records dated date, keeping their order.
func OnDate(records []Record, date time.Time) []Record {
	var out []Record
	for _, r := range records {
		if SameDay(r.Date, date) {
			out = append(out, r)
		}
	}
	return out
}

// Interchange converts r to its serialized form.
func (r Record) Interchange() types.AccomplishmentRecord {
	details := r.Details
	if details == nil {
		details = []string{}
	}
	return types.AccomplishmentRecord{
		Project: r.Project,
		Date:    r.Date.Format(DateLayout),
		Content: r.Summary,
		Details: details,
	}
}

// FromInterchange converts a serialized record back into a Record.
func FromInterchange(in types.AccomplishmentRecord) (Record, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return Record{}, fmt.Errorf("invalid date %q for project %s: %w", in.Date, in.Project, err)
	}
	if in.Text() == "" {
		return Record{}, fmt.Errorf("empty summary for project %s on %s", in.Project, in.Date)
	}
	return Record{
		Project: in.Project,
		Date:    date,
		Summary: in.Text(),
		Details: append(make([]string, 0, len(in.Details)), in.Details...),
	}, nil
}
