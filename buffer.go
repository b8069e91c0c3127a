package wtp

// runeBuffer is the mutable, code-point indexed text shared by every
// view over one parse. A plain []rune gives code-point indexing for
// free, so offsets into it are rune counts, never byte counts.
type runeBuffer []rune

func newRuneBuffer(s string) runeBuffer {
	return runeBuffer([]rune(s))
}

func (b runeBuffer) String() string {
	return string(b)
}

func (b runeBuffer) slice(sp span) string {
	return string(b[sp.start:sp.end])
}

// state is the shared backing store referenced by every view that
// originates from the same root parse: the buffer plus the span index
// discovered against it. Views carry a *state pointer rather than a
// copy, so mutating through any one view is visible to all the others.
// The buffer is released once the garbage collector reclaims the last
// view referencing it.
type state struct {
	buf   runeBuffer
	spans spanIndex
}

func newState(s string) *state {
	buf := newRuneBuffer(s)
	return &state{buf: buf, spans: discoverAll(buf)}
}

func (st *state) text() string {
	return st.buf.String()
}

func (st *state) len() int {
	return len(st.buf)
}
