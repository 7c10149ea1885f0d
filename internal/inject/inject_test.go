package inject

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/accomplishments"
	"github.com/JonathanPhillips/obsidian-automation-scripts/internal/testutil"
)

var today = time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestApplyInsertsBeforeFirstSection(t *testing.T) {
	t.Parallel()

	content := "# proj\n\nline one\nline two\n\n## Build\n\n- go build\n"
	got, changed := Apply(content, today)
	require.True(t, changed)

	want := "# proj\n\nline one\nline two\n\n\n" +
		AccomplishmentSection(today) + "\n" +
		"## Build\n\n- go build\n" +
		"\n\n" + GuidelinesSection
	assert.Equal(t, want, got)
}

func TestApplyIgnoresHeadingsInTitleBlock(t *testing.T) {
	t.Parallel()

	content := "# proj\n## Early\ntext\n"
	got, changed := Apply(content, today)
	require.True(t, changed)

	// No qualifying heading: the section goes to the end.
	assert.True(t, strings.HasPrefix(got, content+"\n\n"+accomplishments.SectionHeading))
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	once, changed := Apply(testutil.LegacyLog("proj"), today)
	require.True(t, changed)

	twice, changed := Apply(once, today)
	assert.False(t, changed)
	assert.Equal(t, once, twice)
}

func TestApplySkipsAnyMentionOfTheSection(t *testing.T) {
	t.Parallel()

	for _, content := range []string{
		"# p\n\na\nb\n\n## Recent Accomplishments (2024)\n- old\n",
		"# p\n\na\nb\n\n## Log\n\n### Recent Accomplishments\n- old\n",
	} {
		got, changed := Apply(content, today)
		assert.False(t, changed, content)
		assert.Equal(t, content, got)
		assert.True(t, HasAccomplishmentSection(content))
	}
	assert.False(t, HasAccomplishmentSection(testutil.LegacyLog("p")))
}

func TestApplyKeepsExistingGuidelines(t *testing.T) {
	t.Parallel()

	content := "# p\n\na\nb\n\n## Accomplishment Logging Guidelines\n\nown rules\n"
	got, changed := Apply(content, today)
	require.True(t, changed)
	assert.Equal(t, 1, strings.Count(got, GuidelinesHeading))
}

func TestInjectedSectionIsExtractable(t *testing.T) {
	t.Parallel()

	got, _ := Apply(testutil.LegacyLog("proj"), today)
	records := accomplishments.ParseSection("proj", got, today)

	require.Len(t, records, 1)
	assert.Equal(t, "Added accomplishment logging framework to CLAUDE.md", records[0].Summary)
}

func TestRun(t *testing.T) {
	t.Parallel()
	env := testutil.NewProjectsDir(t)

	legacy := env.CreateProjectLog("legacy", testutil.LegacyLog("legacy"))
	current := env.CreateProjectLog("current", testutil.ProjectLog("current", "- 2025-01-14: x\n"))
	before := env.ReadFile(current)

	ex, err := accomplishments.NewExtractor(accomplishments.Options{})
	require.NoError(t, err)

	res, err := Run(ex, env.ProjectsDir, today, nil)
	require.NoError(t, err)

	assert.Len(t, res.Files, 2)
	assert.Equal(t, []string{legacy}, res.Updated)
	assert.Empty(t, res.Failed)
	assert.Equal(t, before, env.ReadFile(current))
	assert.Contains(t, env.ReadFile(legacy), accomplishments.SectionHeading)
}
