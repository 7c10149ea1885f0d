// Package dailynote writes accomplishments into Obsidian daily notes.
//
// A daily note lives at a path derived from its date and a template relative
// to the vault root (see ExpandTemplate). The package owns exactly one section
// of the note, "## Development Work"; every other byte is left as it was.
//
// # Update Rules
//
//   - Existing note with the section: the heading and its body are replaced,
//     up to the newline before the next "##" line.
//   - Existing note without it: the section is appended after one blank line.
//   - Missing note: parent directories are created and the note is written
//     from a fixed template that already contains the section.
//
// # Concurrency
//
// Notes are rewritten whole with a single os.WriteFile. There is no lock and
// no temp-file rename: two runs updating the same note race and the last
// writer wins, and a crash mid-write can leave a truncated note. dailylog is
// meant to run once per day from a single machine.
package dailynote
