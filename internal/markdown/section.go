// Package markdown locates heading sections in markdown documents.
package markdown

import "strings"

// Section marks a heading and its body inside a document.
//
// Start is the offset of the heading line. BodyStart is the offset just after
// the heading line's newline. End is the offset of the newline that precedes
// the next heading of the same or a higher level, so doc[Start:End] is the
// heading plus body and the separator newline stays outside.
type Section struct {
	Start     int
	BodyStart int
	End       int
}

// Body returns the text between the heading line and the end of the section.
func (s Section) Body(doc string) string {
	if s.End <= s.BodyStart {
		return ""
	}
	return doc[s.BodyStart:s.End]
}

// FindSection finds the first line that starts with heading (allowing only
// trailing whitespace after it) and returns the section it opens. The section
// runs until the next heading of the same or a higher level, or the end of
// the document. Deeper headings stay inside the section.
func FindSection(doc, heading string) (Section, bool) {
	level := HeadingLevel(heading)
	return findSection(doc, heading, func(line string) bool {
		l := HeadingLevel(line)
		return l > 0 && l <= level
	})
}

// FindPrefixSection is like FindSection, but the section ends at the first
// line that starts with prefix, whatever follows it. With prefix "##" a
// "### Archive" or "##notes" line closes the section.
func FindPrefixSection(doc, heading, prefix string) (Section, bool) {
	return findSection(doc, heading, func(line string) bool {
		return strings.HasPrefix(line, prefix)
	})
}

func findSection(doc, heading string, ends func(line string) bool) (Section, bool) {
	offset := 0
	for offset <= len(doc) {
		lineEnd := strings.IndexByte(doc[offset:], '\n')
		var line string
		next := len(doc) + 1
		if lineEnd == -1 {
			line = doc[offset:]
		} else {
			line = doc[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		}

		if isHeadingLine(line, heading) {
			bodyStart := next
			if bodyStart > len(doc) {
				bodyStart = len(doc)
			}
			return Section{
				Start:     offset,
				BodyStart: bodyStart,
				End:       sectionEnd(doc, ends, offset+len(line), bodyStart),
			}, true
		}

		if lineEnd == -1 {
			break
		}
		offset = next
	}
	return Section{}, false
}

// HasHeading reports whether doc contains a line opening the given heading.
func HasHeading(doc, heading string) bool {
	_, ok := FindSection(doc, heading)
	return ok
}

func isHeadingLine(line, heading string) bool {
	if !strings.HasPrefix(line, heading) {
		return false
	}
	return strings.TrimSpace(line[len(heading):]) == ""
}

// HeadingLevel returns the ATX heading level of line, or 0 when line is not
// a heading. "#tag" is not a heading; "## Title" and a bare "##" are.
func HeadingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n > 6 {
		return 0
	}
	if n < len(line) && line[n] != ' ' && line[n] != '\t' && line[n] != '\r' {
		return 0
	}
	return n
}

// sectionEnd scans lines from bodyStart for the first line that ends the
// section. headingEnd is the offset where the heading text stops; the result
// is never before it.
func sectionEnd(doc string, ends func(line string) bool, headingEnd, bodyStart int) int {
	offset := bodyStart
	for offset < len(doc) {
		nl := strings.IndexByte(doc[offset:], '\n')
		line := doc[offset:]
		if nl != -1 {
			line = doc[offset : offset+nl]
		}
		if ends(line) {
			return offset - 1
		}
		if nl == -1 {
			break
		}
		offset += nl + 1
	}

	end := len(doc)
	if strings.HasSuffix(doc, "\n") {
		end--
	}
	if end < headingEnd {
		end = headingEnd
	}
	return end
}
