package accomplishments

import (
	"regexp"
	"strings"
)

// LineKind tags the result of classifying one section line.
type LineKind int

const (
	// NoMatch is a line that carries no data.
	NoMatch LineKind = iota
	// DateEntry is a line opening a dated entry.
	DateEntry
	// DetailLine is a "-" line that may belong to the open entry.
	DetailLine
)

func (k LineKind) String() string {
	switch k {
	case DateEntry:
		return "date"
	case DetailLine:
		return "detail"
	default:
		return "none"
	}
}

// Line is a classified section line. For DateEntry, DateToken holds the raw
// YYYY-MM-DD token and Text the summary; for DetailLine, Text holds the detail.
type Line struct {
	Kind      LineKind
	DateToken string
	Text      string
}

type lineRule struct {
	kind    LineKind
	pattern *regexp.Regexp
}

// Rules are tried in order; the first match wins.
var lineRules = []lineRule{
	{DateEntry, regexp.MustCompile(`^-?\s*(\d{4}-\d{2}-\d{2}):?\s*(.+)$`)},
	{DateEntry, regexp.MustCompile(`^-?\s*\*\*(\d{4}-\d{2}-\d{2})\*\*:?\s*(.+)$`)},
}

// ClassifyLine classifies a single trimmed line.
func ClassifyLine(line string) Line {
	for _, rule := range lineRules {
		if m := rule.pattern.FindStringSubmatch(line); m != nil {
			return Line{Kind: rule.kind, DateToken: m[1], Text: strings.TrimSpace(m[2])}
		}
	}

	if strings.HasPrefix(line, "-") {
		if detail := strings.TrimSpace(line[1:]); detail != "" {
			return Line{Kind: DetailLine, Text: detail}
		}
	}

	return Line{Kind: NoMatch}
}
