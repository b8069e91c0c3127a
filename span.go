package wtp

import "sort"

// span is a half-open interval [start, end) over a state's buffer:
// start <= end, both valid buffer indices, end exclusive. Views of the
// indexed kinds hold a pointer into the owning state's spanIndex so
// splice can shift it in place; every other such view sharing the same
// state observes the update through its own pointer. Section, Cell and
// Argument spans are not in the index and are not shifted by splice.
type span struct {
	start, end int
}

func (sp span) length() int {
	return sp.end - sp.start
}

// Kind labels a discovered construct family by the short tag used
// throughout the span index (`t`, `p`, `pf`, `wl`, `el`, `c`, `nw`).
type Kind string

const (
	KindTemplate       Kind = "t"
	KindParameter      Kind = "p"
	KindParserFunction Kind = "pf"
	KindWikiLink       Kind = "wl"
	KindExternalLink   Kind = "el"
	KindComment        Kind = "c"
	KindNowiki         Kind = "nw"
)

// spanIndex maps a construct kind to its ordered collection of spans,
// innermost-first / outermost-last.
type spanIndex map[Kind][]*span

func newSpanIndex() spanIndex {
	return spanIndex{
		KindTemplate:       nil,
		KindParameter:      nil,
		KindParserFunction: nil,
		KindWikiLink:       nil,
		KindExternalLink:   nil,
		KindComment:        nil,
		KindNowiki:         nil,
	}
}

// spansOf returns the (start, end) tuples for kind k.
func (idx spanIndex) spansOf(k Kind) [][2]int {
	out := make([][2]int, 0, len(idx[k]))
	for _, sp := range idx[k] {
		out = append(out, [2]int{sp.start, sp.end})
	}
	return out
}

func (idx spanIndex) add(k Kind, sp *span) {
	idx[k] = append(idx[k], sp)
}

// within reports the nested sub-spans (of any bracket-paired kind,
// plus shields) whose start lies in [outer.start, outer.end) and which
// are not outer itself. Accessors use this to skip over nested
// constructs when hunting for an argument's own top-level delimiters.
func (idx spanIndex) within(outer *span) []*span {
	var out []*span
	for k, spans := range idx {
		if k == "" || k == KindExternalLink {
			continue
		}
		for _, sp := range spans {
			if sp == outer {
				continue
			}
			if sp.start >= outer.start && sp.start < outer.end && sp.end <= outer.end {
				out = append(out, sp)
			}
		}
	}
	return out
}

// shieldsFrom rebuilds the []shieldSpan view that the section and
// external-link passes need, from the already-current span index
// rather than rescanning the buffer, so a live accessor always sees
// shield positions as shifted by whatever edits have happened so far.
func (idx spanIndex) shieldsFrom() []shieldSpan {
	var out []shieldSpan
	for _, sp := range idx[KindComment] {
		out = append(out, shieldSpan{KindComment, sp})
	}
	for _, sp := range idx[KindNowiki] {
		out = append(out, shieldSpan{KindNowiki, sp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].sp.start < out[j].sp.start })
	return out
}

// splice replaces the text denoted by sp with newText, then shifts
// every other span in every kind so each continues to denote its
// original construct. Bracket-paired spans never partially overlap
// under a well-formed edit, so this should always fall into the
// shift-both or extend-ancestor case; if it doesn't, the index is
// rediscovered from the post-edit buffer instead of patched in place.
func (st *state) splice(sp *span, newText string) {
	newRunes := []rune(newText)
	s, e := sp.start, sp.end
	delta := len(newRunes) - sp.length()

	rebuilt := make(runeBuffer, 0, len(st.buf)+delta)
	rebuilt = append(rebuilt, st.buf[:s]...)
	rebuilt = append(rebuilt, newRunes...)
	rebuilt = append(rebuilt, st.buf[e:]...)
	st.buf = rebuilt

	overlap := false
	for _, spans := range st.spans {
		for _, other := range spans {
			if other == sp {
				continue
			}
			switch {
			case other.end <= s:
				// unchanged
			case other.start >= e:
				other.start += delta
				other.end += delta
			case other.start <= s && e <= other.end:
				// ancestor of the edited span: extend to cover the
				// replacement.
				other.end += delta
			default:
				overlap = true
			}
		}
	}

	sp.start = s
	sp.end = s + len(newRunes)

	if overlap {
		st.rebuildSpans()
	}
}

// rebuildSpans discards the current span positions and rediscovers
// them from the buffer, then copies the fresh start/end pairs back
// into the existing span objects in order, kind by kind, rather than
// replacing them outright. Every live view holds a pointer to one of
// these objects, so overwriting their fields in place is what lets
// those views keep tracking their construct instead of going stale.
func (st *state) rebuildSpans() {
	fresh := discoverAll(st.buf)
	for k, spans := range st.spans {
		freshSpans := fresh[k]
		for i, old := range spans {
			if i < len(freshSpans) {
				old.start, old.end = freshSpans[i].start, freshSpans[i].end
			}
		}
		if len(freshSpans) > len(spans) {
			st.spans[k] = append(spans, freshSpans[len(spans):]...)
		}
	}
}
