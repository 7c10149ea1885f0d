package accomplishments

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// EmptyNoteBody is the Development Work body when nothing was logged.
	EmptyNoteBody = "No development accomplishments logged today."
	// EmptyConsoleText is printed by the parse command when nothing was found.
	EmptyConsoleText = "No accomplishments found for today."
)

// ProjectGroup holds the records of one project in file order.
type ProjectGroup struct {
	Project string
	Records []Record
}

// GroupByProject groups records by project, sorted by project name. Records
// keep their relative order within a group.
func GroupByProject(records []Record) []ProjectGroup {
	index := make(map[string]int)
	var groups []ProjectGroup

	for _, r := range records {
		i, ok := index[r.Project]
		if !ok {
			i = len(groups)
			index[r.Project] = i
			groups = append(groups, ProjectGroup{Project: r.Project})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Project < groups[j].Project
	})
	return groups
}

// RenderNote renders records as the body of the daily note section.
func RenderNote(records []Record) string {
	if len(records) == 0 {
		return EmptyNoteBody
	}

	var sb strings.Builder
	for _, g := range GroupByProject(records) {
		sb.WriteString(fmt.Sprintf("### [[%s]]\n", g.Project))
		writeEntries(&sb, g.Records)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String())
}

// RenderConsole renders records for terminal output.
func RenderConsole(records []Record) string {
	if len(records) == 0 {
		return EmptyConsoleText
	}

	var sb strings.Builder
	for _, g := range GroupByProject(records) {
		sb.WriteString(fmt.Sprintf("\n## %s\n", g.Project))
		writeEntries(&sb, g.Records)
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

func writeEntries(sb *strings.Builder, records []Record) {
	for _, r := range records {
		sb.WriteString(fmt.Sprintf("- %s\n", r.Summary))
		for _, d := range r.Details {
			sb.WriteString(fmt.Sprintf("  - %s\n", d))
		}
	}
}
