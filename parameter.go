package wtp

// Parameter is a `{{{name|default}}}` construct: unlike a template, it
// has at most one pipe-delimited segment, the default value.
type Parameter struct{ handle }

// NewParameter parses s as a standalone parameter.
func NewParameter(s string) *Parameter {
	st := newState(s)
	return &Parameter{handle{st, newRootSpan(st, KindParameter)}}
}

func (p *Parameter) GoString() string { return reprOf("Parameter", p.String()) }

func (p *Parameter) bounds() (lo, hi int) {
	lo, hi = p.sp.start+3, p.sp.end-3
	if hi < lo {
		hi = lo
	}
	return
}

func (p *Parameter) pipePos() int {
	lo, hi := p.bounds()
	skip := p.st.spans.within(p.sp)
	_, pipes := topLevelMarks(p.st.buf, lo, hi, skip, p.sp)
	if len(pipes) == 0 {
		return -1
	}
	return pipes[0]
}

// Name returns the text between `{{{` and the first top-level `|`, or
// the whole content if there is no pipe.
func (p *Parameter) Name() string {
	lo, hi := p.bounds()
	end := hi
	if pp := p.pipePos(); pp != -1 {
		end = pp
	}
	return string(p.st.buf[lo:end])
}

func (p *Parameter) SetName(name string) {
	lo, hi := p.bounds()
	end := hi
	if pp := p.pipePos(); pp != -1 {
		end = pp
	}
	p.st.splice(&span{lo, end}, name)
}

// Pipe returns the literal "|" if the parameter has a default value, or
// "" if it does not.
func (p *Parameter) Pipe() string {
	if p.pipePos() == -1 {
		return ""
	}
	return "|"
}

// Default returns the text after the pipe, or "" if the parameter has
// none.
func (p *Parameter) Default() string {
	pp := p.pipePos()
	if pp == -1 {
		return ""
	}
	_, hi := p.bounds()
	return string(p.st.buf[pp+1 : hi])
}

// SetDefault rewrites the default value, inserting a pipe first if the
// parameter did not already have one.
func (p *Parameter) SetDefault(value string) {
	_, hi := p.bounds()
	pp := p.pipePos()
	if pp == -1 {
		p.st.splice(&span{hi, hi}, "|"+value)
		return
	}
	p.st.splice(&span{pp + 1, hi}, value)
}
