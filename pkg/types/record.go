package types

// AccomplishmentRecord is the interchange form of an extracted accomplishment,
// as written by `dailylog parse --json` and read by `dailylog daily --input`.
type AccomplishmentRecord struct {
	Project string   `yaml:"project" json:"project"`
	Date    string   `yaml:"date" json:"date"` // YYYY-MM-DD
	Content string   `yaml:"content" json:"content"`
	Summary string   `yaml:"summary,omitempty" json:"summary,omitempty"` // accepted on read as an alias of Content
	Details []string `yaml:"details" json:"details"`
}

// Text returns the summary, preferring Content over the Summary alias.
func (r AccomplishmentRecord) Text() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Summary
}
