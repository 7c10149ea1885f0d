package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		doc     string
		heading string
		found   bool
		region  string
		body    string
	}{
		{
			name:    "followed by another heading",
			doc:     "# Title\n## Development Work\nold text\n## Other\nkeep\n",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work\nold text",
			body:    "old text",
		},
		{
			name:    "last section with trailing newline",
			doc:     "intro\n## Development Work\n\nline one\nline two\n",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work\n\nline one\nline two",
			body:    "\nline one\nline two",
		},
		{
			name:    "last section without trailing newline",
			doc:     "## Development Work\nbody",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work\nbody",
			body:    "body",
		},
		{
			name:    "empty section directly followed by heading",
			doc:     "## Development Work\n## Other\n",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work",
			body:    "",
		},
		{
			name:    "deeper heading stays inside section",
			doc:     "## Development Work\n\n### [[alpha]]\n- a\n\n### [[beta]]\n- b\n\n## Meeting Notes\n",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work\n\n### [[alpha]]\n- a\n\n### [[beta]]\n- b\n",
			body:    "\n### [[alpha]]\n- a\n\n### [[beta]]\n- b\n",
		},
		{
			name:    "higher level heading ends section",
			doc:     "## Recent Accomplishments\n- a\n# Appendix\n- b\n",
			heading: "## Recent Accomplishments",
			found:   true,
			region:  "## Recent Accomplishments\n- a",
			body:    "- a",
		},
		{
			name:    "hashtag line is not a heading",
			doc:     "## Recent Accomplishments\n#tag\n- a\n",
			heading: "## Recent Accomplishments",
			found:   true,
			region:  "## Recent Accomplishments\n#tag\n- a",
			body:    "#tag\n- a",
		},
		{
			name:    "heading at end of file",
			doc:     "text\n## Development Work",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work",
			body:    "",
		},
		{
			name:    "trailing whitespace on heading",
			doc:     "## Development Work  \r\nbody\n",
			heading: "## Development Work",
			found:   true,
			region:  "## Development Work  \r\nbody",
			body:    "body",
		},
		{
			name:    "heading text not at line start",
			doc:     "see ## Development Work\n",
			heading: "## Development Work",
			found:   false,
		},
		{
			name:    "longer heading is a different section",
			doc:     "## Development Workflow\nx\n",
			heading: "## Development Work",
			found:   false,
		},
		{
			name:    "missing",
			doc:     "# Title\n\nNothing here.\n",
			heading: "## Development Work",
			found:   false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sec, ok := FindSection(tt.doc, tt.heading)
			require.Equal(t, tt.found, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.region, tt.doc[sec.Start:sec.End])
			assert.Equal(t, tt.body, sec.Body(tt.doc))
		})
	}
}

func TestHasHeading(t *testing.T) {
	t.Parallel()

	assert.True(t, HasHeading("# P\n\n## Recent Accomplishments\n", "## Recent Accomplishments"))
	assert.False(t, HasHeading("# P\n\n## Recent\n", "## Recent Accomplishments"))
}

func TestHeadingLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]int{
		"# Title":       1,
		"## Section":    2,
		"### Sub":       3,
		"##":            2,
		"##\tTabbed":    2,
		"#tag":          0,
		"plain":         0,
		"":              0,
		"####### seven": 0,
		" ## indented":  0,
	}

	for line, want := range tests {
		assert.Equal(t, want, HeadingLevel(line), line)
	}
}

func TestFindPrefixSection(t *testing.T) {
	t.Parallel()

	doc := "## Recent Accomplishments\n- a\n### Archive\n- b\n## Other\n"

	sec, ok := FindPrefixSection(doc, "## Recent Accomplishments", "##")
	require.True(t, ok)
	assert.Equal(t, "- a", sec.Body(doc))

	// The level-aware locator keeps the subheading inside
	sec, ok = FindSection(doc, "## Recent Accomplishments")
	require.True(t, ok)
	assert.Equal(t, "- a\n### Archive\n- b", sec.Body(doc))

	sec, ok = FindPrefixSection("## Recent Accomplishments\n- a\n##notes\n", "## Recent Accomplishments", "##")
	require.True(t, ok)
	assert.Equal(t, "- a", sec.Body("## Recent Accomplishments\n- a\n##notes\n"))

	_, ok = FindPrefixSection("# Title\n", "## Recent Accomplishments", "##")
	assert.False(t, ok)
}
