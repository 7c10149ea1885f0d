// Package accomplishments extracts dated accomplishment entries from project
// log files and renders them for daily notes.
//
// # Log Files
//
// Every project directory below the projects root may contain a CLAUDE.md
// with a "Recent Accomplishments" section:
//
//	## Recent Accomplishments
//
//	*Log major tasks, features, and fixes with timestamps*
//
//	- 2025-01-15: Released v2 of the parser
//	  - Fixed bug in parser.go:45
//	  - Tagged commit abc123
//	- **2025-01-14**: Initial import
//
// Lines starting with "*" are notes and never data. A dated line opens a new
// record; "-" lines that follow it become details until the next dated line
// or the end of the section. The section ends at the next line beginning with
// "##".
//
// # Traversal
//
// FindLogFiles walks the root in lexical order, skipping hidden directories,
// the automation directory and any configured ignore globs. The root's own
// log file is never read.
//
// # Rendering
//
// RenderNote produces the body of the "## Development Work" section of a
// daily note, one "### [[project]]" group per project in name order.
// RenderConsole produces the same grouping for terminal output.
//
// # Usage
//
//	ex := accomplishments.NewExtractor(accomplishments.Options{Logger: logger})
//	records, err := ex.Extract(projectsRoot, date)
//	if err != nil {
//	    return err
//	}
//	body := accomplishments.RenderNote(records)
package accomplishments
