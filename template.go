package wtp

import "strings"

// Template is a `{{name|arg|...}}` construct.
type Template struct{ handle }

// NewTemplate parses s as a standalone template.
func NewTemplate(s string) *Template {
	st := newState(s)
	return &Template{handle{st, newRootSpan(st, KindTemplate)}}
}

func (t *Template) GoString() string { return reprOf("Template", t.String()) }

// Name returns the raw text between `{{` and the first top-level `|`
// (or the closing `}}` if there is none), whitespace included
// (`'{{ wrapper | p1 }}'` has Name() == " wrapper ").
func (t *Template) Name() string {
	return templateName(t.st, t.sp, false)
}

// SetName replaces the raw name segment (including whatever whitespace
// surrounds it in the source) with name.
func (t *Template) SetName(name string) {
	setTemplateName(t.st, t.sp, name, false)
}

// Arguments returns the template's pipe-delimited arguments, in source
// order, as live views.
func (t *Template) Arguments() []*Argument {
	return templateArguments(t.st, t.sp)
}

// RemoveDuplicateArguments drops every named argument except the last
// occurrence of each name; positional arguments are never touched.
func (t *Template) RemoveDuplicateArguments() {
	removeDuplicateArguments(t.st, t.sp)
}

// ParserFunction is a `{{#name:arg|...}}` construct: a template-shaped
// span whose content contains an unshielded top-level `:` before any
// top-level `|`.
type ParserFunction struct{ handle }

// NewParserFunction parses s as a standalone parser function.
func NewParserFunction(s string) *ParserFunction {
	st := newState(s)
	return &ParserFunction{handle{st, newRootSpan(st, KindParserFunction)}}
}

func (pf *ParserFunction) GoString() string { return reprOf("ParserFunction", pf.String()) }

// Name returns the text between `{{` and the classifying `:`, trimmed
// of whitespace with a single leading `#` stripped (`'{{ #if: a|b|c }}'`
// has Name() == "if").
func (pf *ParserFunction) Name() string {
	return templateName(pf.st, pf.sp, true)
}

func (pf *ParserFunction) SetName(name string) {
	setTemplateName(pf.st, pf.sp, name, true)
}

// Arguments returns the parser function's arguments. The first
// argument's own delimiter is the classifying `:` itself, so
// `'{{ #if: test | true | false }}'` yields three arguments whose raw
// text starts with `": test "`, `"| true "`, and `"| false "`.
func (pf *ParserFunction) Arguments() []*Argument {
	return templateArguments(pf.st, pf.sp)
}

func (pf *ParserFunction) RemoveDuplicateArguments() {
	removeDuplicateArguments(pf.st, pf.sp)
}

func templateName(st *state, sp *span, isPF bool) string {
	lo, hi := sp.start+2, sp.end-2
	if hi < lo {
		return ""
	}
	skip := st.spans.within(sp)
	colon, pipes := topLevelMarks(st.buf, lo, hi, skip, sp)
	nameEnd := hi
	if len(pipes) > 0 {
		nameEnd = pipes[0]
	}
	if isPF {
		if colon != -1 {
			nameEnd = colon
		}
		name := strings.TrimSpace(string(st.buf[lo:nameEnd]))
		return strings.TrimPrefix(name, "#")
	}
	return string(st.buf[lo:nameEnd])
}

func setTemplateName(st *state, sp *span, name string, isPF bool) {
	lo, hi := sp.start+2, sp.end-2
	if hi < lo {
		return
	}
	skip := st.spans.within(sp)
	colon, pipes := topLevelMarks(st.buf, lo, hi, skip, sp)
	nameEnd := hi
	if len(pipes) > 0 {
		nameEnd = pipes[0]
	}
	if isPF && colon != -1 {
		nameEnd = colon
	}
	st.splice(&span{lo, nameEnd}, name)
}

// templateArguments discovers arguments for both templates and parser
// functions: every top-level, unshielded `|` starts a new argument,
// and for a parser function the classifying `:` plays the same role
// for the first argument.
func templateArguments(st *state, sp *span) []*Argument {
	lo, hi := sp.start+2, sp.end-2
	if hi < lo {
		return nil
	}
	skip := st.spans.within(sp)
	colon, pipes := topLevelMarks(st.buf, lo, hi, skip, sp)
	var delims []int
	if colon != -1 {
		delims = append(delims, colon)
	}
	delims = append(delims, pipes...)
	args := make([]*Argument, len(delims))
	anon := 0
	for i, d := range delims {
		end := hi
		if i+1 < len(delims) {
			end = delims[i+1]
		}
		a := &Argument{handle{st, &span{d, end}}, 0}
		if !a.IsNamed() {
			anon++
			a.anonIndex = anon
		}
		args[i] = a
	}
	return args
}

// removeDuplicateArguments re-derives the argument list after every
// removal rather than mutating a stale slice, since only spans
// registered in the state's span index are shifted by splice. Ad hoc
// argument spans are not, by design, since arguments are not persisted
// as independent discovered constructs.
func removeDuplicateArguments(st *state, sp *span) {
	for {
		args := templateArguments(st, sp)
		lastIdx := map[string]int{}
		for i, a := range args {
			if a.IsNamed() {
				lastIdx[strings.TrimSpace(a.Name())] = i
			}
		}
		removed := false
		for i, a := range args {
			if !a.IsNamed() {
				continue
			}
			if lastIdx[strings.TrimSpace(a.Name())] != i {
				st.splice(a.sp, "")
				removed = true
				break
			}
		}
		if !removed {
			return
		}
	}
}
