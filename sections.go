package wtp

import "fmt"

// matchHeadingLine tests whether line (the text up to, but not
// including, its trailing newline) opens a section heading, and if so
// reports its level and title.
//
// A heading is an opening run of 1-6 '=' characters, a title, then a
// closing run of exactly as many '=' characters, followed only by
// spaces or tabs. The opening run length is tried from longest (capped
// at 6) down to 1; for each candidate opening length the title is
// grown one rune at a time (shortest match first) until a same-length
// closing run is found immediately after it. This reproduces the
// reference behavior for unbalanced runs: '====== ==   \n' is level 2
// with title '==== ', not level 6 with an empty title.
func matchHeadingLine(line string) (ok bool, level int, title string) {
	r := []rune(line)
	n := len(r)

	maxOpen := 0
	for maxOpen < n && maxOpen < 6 && r[maxOpen] == '=' {
		maxOpen++
	}
	if maxOpen == 0 {
		return false, 0, ""
	}

	for openLen := maxOpen; openLen >= 1; openLen-- {
		rest := r[openLen:]
		for titleLen := 1; titleLen+openLen <= len(rest); titleLen++ {
			closeStart := titleLen
			closeEnd := titleLen + openLen
			allEq := true
			for k := closeStart; k < closeEnd; k++ {
				if rest[k] != '=' {
					allEq = false
					break
				}
			}
			if !allEq {
				continue
			}
			if !isSpaceTabOnly(rest[closeEnd:]) {
				continue
			}
			return true, openLen, string(rest[:titleLen])
		}
	}
	return false, 0, ""
}

func isSpaceTabOnly(r []rune) bool {
	for _, c := range r {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

// lineBounds returns the [start, end) of the line containing pos,
// where end is the position of the line's newline (or len(buf) if
// there is none), not including the newline itself.
func lineBounds(buf runeBuffer, pos int) (start, end int) {
	start = pos
	for start > 0 && buf[start-1] != '\n' {
		start--
	}
	end = pos
	n := len(buf)
	for end < n && buf[end] != '\n' {
		end++
	}
	return
}

// headingSpan describes one discovered heading line within a buffer.
type headingSpan struct {
	lineStart, lineEnd int // the heading line itself, excluding its newline
	level              int
	title              string
}

// findHeadings scans the whole buffer line by line for heading lines,
// outside any shielded region.
func findHeadings(buf runeBuffer, shields []shieldSpan) []headingSpan {
	var out []headingSpan
	n := len(buf)
	pos := 0
	for pos < n {
		if end, ok := shieldedEnd(shields, pos); ok {
			pos = end
			continue
		}
		lineEnd := pos
		for lineEnd < n && buf[lineEnd] != '\n' {
			lineEnd++
		}
		line := string(buf[pos:lineEnd])
		if ok, level, title := matchHeadingLine(line); ok {
			out = append(out, headingSpan{pos, lineEnd, level, title})
		}
		if lineEnd < n {
			pos = lineEnd + 1
		} else {
			pos = n
		}
	}
	return out
}

// sectionBounds describes one section's extent: the whole section,
// including its heading line and every nested subsection, runs from its
// heading (or buffer start, for the lead) until the next heading whose
// level is <= this section's level, or end of buffer.
type sectionBounds struct {
	span  span
	level int
	title string
}

// discoverSections finds the heading-delimited section boundaries of
// buf: the lead (level 0) always ends at the first heading found
// regardless of its level (or at end of buffer if there is none);
// each subsequent section runs until the next heading at the same or
// shallower level, so a section's string includes any deeper nested
// subsections verbatim.
func discoverSections(buf runeBuffer, shields []shieldSpan) []sectionBounds {
	headings := findHeadings(buf, shields)
	n := len(buf)

	var out []sectionBounds
	leadEnd := n
	if len(headings) > 0 {
		leadEnd = headings[0].lineStart
	}
	out = append(out, sectionBounds{span{0, leadEnd}, 0, ""})

	for i, h := range headings {
		end := n
		for j := i + 1; j < len(headings); j++ {
			if headings[j].level <= h.level {
				end = headings[j].lineStart
				break
			}
		}
		out = append(out, sectionBounds{span{h.lineStart, end}, h.level, h.title})
	}
	return out
}

// matchLeadOnlyHeading applies matchHeadingLine to only the first line
// of s, the rule a directly-constructed Section uses:
// NewSection("== a ==\n== b ==\n") is a single level-2 section whose
// title is " a " and whose body includes the second heading line as
// ordinary text, because only the first line is tested.
func matchLeadOnlyHeading(s string) (ok bool, level int, title string) {
	buf := newRuneBuffer(s)
	_, lineEnd := lineBounds(buf, 0)
	return matchHeadingLine(string(buf[:lineEnd]))
}

// headingTitleBounds locates the title's [start, end) rune offsets
// within line, constrained to an opening run of exactly level `=`
// characters. Section.SetTitle uses this to find the current title
// text without re-deriving the level, which was fixed at discovery
// time.
func headingTitleBounds(line string, level int) (start, end int, ok bool) {
	r := []rune(line)
	n := len(r)
	if level <= 0 || level > n {
		return 0, 0, false
	}
	for k := 0; k < level; k++ {
		if r[k] != '=' {
			return 0, 0, false
		}
	}
	rest := r[level:]
	for titleLen := 1; titleLen+level <= len(rest); titleLen++ {
		closeStart := titleLen
		closeEnd := titleLen + level
		allEq := true
		for k := closeStart; k < closeEnd; k++ {
			if rest[k] != '=' {
				allEq = false
				break
			}
		}
		if !allEq {
			continue
		}
		if !isSpaceTabOnly(rest[closeEnd:]) {
			continue
		}
		return level, level + titleLen, true
	}
	return 0, 0, false
}

// Section is a heading-delimited region of a WikiText: the lead
// (level 0, no heading of its own) or a level-N section running until
// the next heading at level <= N.
type Section struct {
	handle
	level int
	title string
}

// NewSection parses s directly: only its first line is tested for
// heading-ness, so a heading appearing later in s is ordinary body
// text, not a nested subsection boundary.
func NewSection(s string) *Section {
	st := newState(s)
	sp := &span{0, len(st.buf)}
	if ok, level, title := matchLeadOnlyHeading(s); ok {
		return &Section{handle{st, sp}, level, title}
	}
	return &Section{handle{st, sp}, 0, ""}
}

func (sec *Section) GoString() string { return reprOf("Section", sec.String()) }

// Level returns the section's heading level, or 0 for the lead.
func (sec *Section) Level() int { return sec.level }

// Title returns the section's heading title, or "" for the lead.
func (sec *Section) Title() string { return sec.title }

func (sec *Section) bodyStart() int {
	if sec.level == 0 {
		return sec.sp.start
	}
	_, lineEnd := lineBounds(sec.st.buf, sec.sp.start)
	start := lineEnd
	if start < sec.sp.end && sec.st.buf[start] == '\n' {
		start++
	}
	if start > sec.sp.end {
		start = sec.sp.end
	}
	return start
}

// Contents returns the section's body: the whole string for the lead
// (which has no heading line of its own), or everything after the
// heading line for any other section.
func (sec *Section) Contents() string {
	return string(sec.st.buf[sec.bodyStart():sec.sp.end])
}

// SetContents rewrites the section's body, leaving any heading line
// untouched.
func (sec *Section) SetContents(s string) {
	start := sec.bodyStart()
	oldLen := sec.sp.end - start
	sec.st.splice(&span{start, sec.sp.end}, s)
	sec.sp.end += len([]rune(s)) - oldLen
}

// SetTitle rewrites the heading title in place. Called on the lead
// section, it returns a wrapped ErrLeadTitleless instead of mutating
// anything.
func (sec *Section) SetTitle(title string) error {
	if sec.level == 0 {
		return fmt.Errorf("wtp: %w", ErrLeadTitleless)
	}
	lineStart, lineEnd := lineBounds(sec.st.buf, sec.sp.start)
	line := string(sec.st.buf[lineStart:lineEnd])
	ts, te, ok := headingTitleBounds(line, sec.level)
	if !ok {
		return nil
	}
	sec.st.splice(&span{lineStart + ts, lineStart + te}, title)
	sec.sp.end += len([]rune(title)) - (te - ts)
	sec.title = title
	return nil
}
