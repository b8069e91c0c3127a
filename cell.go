package wtp

import "strings"

// Cell is a lightweight view over one table-cell token: an optional
// leading run of newlines, a `|` or `!` separator, an optional
// `key=val ...` attribute run terminated by an unshielded `|`, then the
// value running to the end of the cell's text. This does not attempt
// row or table grouping; it only recognizes the single-cell token
// boundary.
type Cell struct{ handle }

// NewCell parses s as one cell token.
func NewCell(s string) *Cell {
	st := newState(s)
	return &Cell{handle{st, &span{0, len(st.buf)}}}
}

func (c *Cell) GoString() string { return reprOf("Cell", c.String()) }

// parse locates where the value begins and collects any attributes,
// re-derived from the current buffer on every call.
func (c *Cell) parse() (valueStart int, attrs map[string]string) {
	buf := c.st.buf
	lo, hi := c.sp.start, c.sp.end
	i := lo
	for i < hi && buf[i] == '\n' {
		i++
	}
	if i < hi && (buf[i] == '|' || buf[i] == '!') {
		i++
	}
	attrs = map[string]string{}
	skip := c.st.spans.within(c.sp)
	_, pipes := topLevelMarks(buf, i, hi, skip, c.sp)
	if len(pipes) == 0 {
		return i, attrs
	}
	attrEnd := pipes[0]
	parseAttrsInto(string(buf[i:attrEnd]), attrs)
	return attrEnd + 1, attrs
}

// Value returns the cell's content after its separator and any
// attribute run.
func (c *Cell) Value() string {
	valueStart, _ := c.parse()
	return string(c.st.buf[valueStart:c.sp.end])
}

// SetValue rewrites the cell's value, leaving any separator/attribute
// prefix untouched.
func (c *Cell) SetValue(value string) {
	valueStart, _ := c.parse()
	oldLen := c.sp.end - valueStart
	c.st.splice(&span{valueStart, c.sp.end}, value)
	c.sp.end += len([]rune(value)) - oldLen
}

// Attrs returns the cell's `key=val` attributes, or an empty (non-nil)
// map if it has none.
func (c *Cell) Attrs() map[string]string {
	_, attrs := c.parse()
	return attrs
}

func parseAttrsInto(attrText string, attrs map[string]string) {
	for _, f := range strings.Fields(attrText) {
		if idx := strings.IndexByte(f, '='); idx >= 0 {
			attrs[f[:idx]] = f[idx+1:]
		}
	}
}
