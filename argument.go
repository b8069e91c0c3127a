package wtp

import "strconv"

// Argument is one pipe-delimited (or, for a parser function's first
// argument, colon-delimited) segment of a Template or ParserFunction:
// its own span always begins at that delimiter character and runs to
// the next delimiter or the construct's closing braces.
//
// anonIndex is the argument's 1-based position among its construct's
// anonymous (unnamed) siblings only, assigned by templateArguments;
// zero means "not assigned", which Name() treats as 1, the correct
// answer for a standalone argument with no siblings at all.
type Argument struct {
	handle
	anonIndex int
}

// NewArgument parses s as a standalone argument: s must begin with its
// own leading `|` or `:` delimiter.
func NewArgument(s string) *Argument {
	st := newState(s)
	return &Argument{handle{st, &span{0, len(st.buf)}}, 0}
}

func (a *Argument) GoString() string { return reprOf("Argument", a.String()) }

func (a *Argument) bodyBounds() (start, end int) {
	start, end = a.sp.start+1, a.sp.end
	if start > end {
		start = end
	}
	return
}

func (a *Argument) equalsPos() int {
	start, end := a.bodyBounds()
	skip := a.st.spans.within(a.sp)
	return topLevelEquals(a.st.buf, start, end, skip, a.sp)
}

// IsNamed reports whether the argument has a top-level `name=value`
// form, as opposed to being purely positional.
func (a *Argument) IsNamed() bool {
	return a.equalsPos() != -1
}

// EqualSign returns the literal `=` separating name from value, or ""
// for a positional argument.
func (a *Argument) EqualSign() string {
	eq := a.equalsPos()
	if eq == -1 {
		return ""
	}
	return string(a.st.buf[eq])
}

// Name returns the text before the top-level `=` for a named argument.
// A positional argument has no literal name in the source, so it
// reports its 1-based position among the anonymous arguments of its
// construct instead (`Argument('| a ')` alone has Name() == "1";
// in `{{t|kw=a|pa|kw2=a|pa2}}`, "pa" is the first anonymous argument
// and "pa2" the second, so they report "1" and "2" respectively,
// independent of how many named arguments sit between them).
func (a *Argument) Name() string {
	eq := a.equalsPos()
	if eq == -1 {
		idx := a.anonIndex
		if idx == 0 {
			idx = 1
		}
		return strconv.Itoa(idx)
	}
	start, _ := a.bodyBounds()
	return string(a.st.buf[start:eq])
}

// Value returns the text after the delimiter (and, if named, after the
// `=`) to the end of the argument.
func (a *Argument) Value() string {
	start, end := a.bodyBounds()
	eq := a.equalsPos()
	if eq == -1 {
		return string(a.st.buf[start:end])
	}
	return string(a.st.buf[eq+1 : end])
}

// SetName rewrites the argument's name, promoting a positional argument
// to a named one (inserting "name=" right after the delimiter) if it
// had no name before.
func (a *Argument) SetName(name string) {
	start, _ := a.bodyBounds()
	eq := a.equalsPos()
	if eq == -1 {
		a.st.splice(&span{start, start}, name+"=")
		a.sp.end += len([]rune(name)) + 1
		return
	}
	a.st.splice(&span{start, eq}, name)
	a.sp.end += len([]rune(name)) - (eq - start)
}

// SetValue rewrites the argument's value, leaving any name/`=` prefix
// untouched.
func (a *Argument) SetValue(value string) {
	start, end := a.bodyBounds()
	eq := a.equalsPos()
	if eq != -1 {
		start = eq + 1
	}
	a.st.splice(&span{start, end}, value)
	a.sp.end += len([]rune(value)) - (end - start)
}

func topLevelEquals(buf runeBuffer, lo, hi int, skip []*span, self *span) int {
	starts := make(map[int]int, len(skip))
	for _, sp := range skip {
		if sp == self {
			continue
		}
		if sp.start >= lo && sp.start < hi {
			e := sp.end
			if e > hi {
				e = hi
			}
			if e > sp.start {
				starts[sp.start] = e
			}
		}
	}
	i := lo
	for i < hi {
		if end, ok := starts[i]; ok {
			i = end
			continue
		}
		if buf[i] == '=' {
			return i
		}
		i++
	}
	return -1
}
