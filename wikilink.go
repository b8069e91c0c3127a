package wtp

// WikiLink is a `[[target|text]]` construct.
type WikiLink struct{ handle }

// NewWikiLink parses s as a standalone wikilink.
func NewWikiLink(s string) *WikiLink {
	st := newState(s)
	return &WikiLink{handle{st, newRootSpan(st, KindWikiLink)}}
}

func (wl *WikiLink) GoString() string { return reprOf("WikiLink", wl.String()) }

func (wl *WikiLink) bounds() (lo, hi int) {
	lo, hi = wl.sp.start+2, wl.sp.end-2
	if hi < lo {
		hi = lo
	}
	return
}

func (wl *WikiLink) pipePos() int {
	lo, hi := wl.bounds()
	skip := wl.st.spans.within(wl.sp)
	_, pipes := topLevelMarks(wl.st.buf, lo, hi, skip, wl.sp)
	if len(pipes) == 0 {
		return -1
	}
	return pipes[0]
}

// Target returns the text between `[[` and the first top-level `|`, or
// the whole content if the link has no display text. A newline in the
// target is an ordinary character here, not special-cased.
func (wl *WikiLink) Target() string {
	lo, hi := wl.bounds()
	end := hi
	if pp := wl.pipePos(); pp != -1 {
		end = pp
	}
	return string(wl.st.buf[lo:end])
}

func (wl *WikiLink) SetTarget(target string) {
	lo, hi := wl.bounds()
	end := hi
	if pp := wl.pipePos(); pp != -1 {
		end = pp
	}
	wl.st.splice(&span{lo, end}, target)
}

// Text returns the display text after the pipe, or "" if the link has
// none.
func (wl *WikiLink) Text() string {
	pp := wl.pipePos()
	if pp == -1 {
		return ""
	}
	_, hi := wl.bounds()
	return string(wl.st.buf[pp+1 : hi])
}

// SetText rewrites the display text, inserting a pipe first if the
// link did not already have one.
func (wl *WikiLink) SetText(text string) {
	_, hi := wl.bounds()
	pp := wl.pipePos()
	if pp == -1 {
		wl.st.splice(&span{hi, hi}, "|"+text)
		return
	}
	wl.st.splice(&span{pp + 1, hi}, text)
}
