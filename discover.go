package wtp

import (
	"sort"
	"strings"
)

// discoverAll scans buf and returns a freshly populated span index: a
// shield pass for comments/nowiki, a bracket pass for templates/
// parameters/parser functions/wikilinks, and an external-link pass,
// each kind ordered innermost-first.
func discoverAll(buf runeBuffer) spanIndex {
	idx := newSpanIndex()

	shields := shieldPass(buf)
	for _, sh := range shields {
		idx.add(sh.kind, sh.sp)
	}

	tpf, params, links := bracketPass(buf, shields)

	templates, parserFns := classifyTemplates(buf, tpf, params, links, shields)
	for _, e := range templates {
		idx.add(KindTemplate, e.sp)
	}
	for _, e := range parserFns {
		idx.add(KindParserFunction, e.sp)
	}
	for _, e := range params {
		idx.add(KindParameter, e.sp)
	}
	for _, e := range links {
		idx.add(KindWikiLink, e.sp)
	}

	sortByDepthThenStart(idx[KindTemplate], depthIndex(templates))
	sortByDepthThenStart(idx[KindParserFunction], depthIndex(parserFns))
	sortByDepthThenStart(idx[KindParameter], depthIndex(params))
	sortByDepthThenStart(idx[KindWikiLink], depthIndex(links))

	for _, sp := range externalLinkPass(buf, shields) {
		idx.add(KindExternalLink, sp)
	}

	return idx
}

// shieldSpan pairs a discovered comment/nowiki region with its kind.
type shieldSpan struct {
	kind Kind
	sp   *span
}

// shieldPass recognizes <!--…--> and <nowiki>…</nowiki> regions,
// extending each to the end of the buffer if it is never closed.
func shieldPass(buf runeBuffer) []shieldSpan {
	var out []shieldSpan
	n := len(buf)
	i := 0
	for i < n {
		switch {
		case hasPrefixAt(buf, i, "<!--"):
			start := i
			end := n
			next := n
			if j := indexFrom(buf, i+4, "-->"); j >= 0 {
				end, next = j+3, j+3
			}
			out = append(out, shieldSpan{KindComment, &span{start, end}})
			i = next
		case hasPrefixAt(buf, i, "<nowiki>"):
			start := i
			end := n
			next := n
			if j := indexFrom(buf, i+8, "</nowiki>"); j >= 0 {
				end, next = j+9, j+9
			}
			out = append(out, shieldSpan{KindNowiki, &span{start, end}})
			i = next
		default:
			i++
		}
	}
	return out
}

// shieldedEnd reports, if pos lies inside a shielded region, the
// position just past that region.
func shieldedEnd(shields []shieldSpan, pos int) (int, bool) {
	for _, sh := range shields {
		if pos >= sh.sp.start && pos < sh.sp.end {
			return sh.sp.end, true
		}
	}
	return 0, false
}

// depthSpan is a span annotated with the nesting depth at which its
// opening delimiter was pushed, used only to order the final span
// index: a span appears after everything it strictly contains, so
// deeper spans are emitted first.
type depthSpan struct {
	sp    *span
	depth int
}

func depthIndex(entries []depthSpan) map[*span]int {
	m := make(map[*span]int, len(entries))
	for _, e := range entries {
		m[e.sp] = e.depth
	}
	return m
}

func sortByDepthThenStart(spans []*span, depths map[*span]int) {
	sort.SliceStable(spans, func(i, j int) bool {
		di, dj := depths[spans[i]], depths[spans[j]]
		if di != dj {
			return di > dj
		}
		return spans[i].start < spans[j].start
	})
}

type frameKind int

const (
	frameTemplateOrPF frameKind = iota
	frameParam
	frameLink
)

func (k frameKind) need() int {
	if k == frameParam {
		return 3
	}
	return 2
}

func (k frameKind) isBrace() bool {
	return k == frameTemplateOrPF || k == frameParam
}

type frame struct {
	kind    frameKind
	openPos int
	depth   int
}

// bracketPass is a single left-to-right scan that tokenizes {{{, }}},
// {{, }}, [[, ]] outside shielded regions, matching them against ONE
// shared stack. The brace family (templates/parser functions and
// parameters) and the bracket family (wikilinks) share a single stack,
// not two independent ones: a closing run of one family can never
// reach through a still-open frame of the other family to close
// something buried beneath it. `'{{text |[[A|}}]]}}'` is the reason
// this matters: the `}}` appearing while a `[[` is still open must not
// close the outer template. It isn't consumed as a closer at all; the
// wikilink's own `]]` closes first, and only then does the template's
// `}}` become reachable at the stack top.
func bracketPass(buf runeBuffer, shields []shieldSpan) (tpf, params []depthSpan, links []depthSpan) {
	n := len(buf)
	var stack []*frame
	i := 0
	for i < n {
		if end, ok := shieldedEnd(shields, i); ok {
			i = end
			continue
		}
		switch buf[i] {
		case '{':
			j := i
			for j < n {
				if _, ok := shieldedEnd(shields, j); ok {
					break
				}
				if buf[j] != '{' {
					break
				}
				j++
			}
			run := j - i
			pos := i
			for run > 0 {
				switch {
				case run >= 3:
					stack = append(stack, &frame{frameParam, pos, len(stack)})
					pos += 3
					run -= 3
				case run == 2:
					stack = append(stack, &frame{frameTemplateOrPF, pos, len(stack)})
					pos += 2
					run -= 2
				default:
					pos++
					run--
				}
			}
			i = j
		case '}':
			j := i
			for j < n && buf[j] == '}' {
				j++
			}
			remaining := j - i
			pos := i
			for remaining > 0 && len(stack) > 0 {
				top := stack[len(stack)-1]
				if !top.kind.isBrace() {
					break
				}
				need := top.kind.need()
				if remaining < need {
					break
				}
				stack = stack[:len(stack)-1]
				closeEnd := pos + need
				sp := &span{top.openPos, closeEnd}
				if top.kind == frameParam {
					params = append(params, depthSpan{sp, top.depth})
				} else {
					tpf = append(tpf, depthSpan{sp, top.depth})
				}
				pos = closeEnd
				remaining -= need
			}
			i = j
		case '[':
			j := i
			for j < n && buf[j] == '[' {
				j++
			}
			run := j - i
			pos := i
			for run >= 2 {
				stack = append(stack, &frame{frameLink, pos, len(stack)})
				pos += 2
				run -= 2
			}
			i = j
		case ']':
			j := i
			for j < n && buf[j] == ']' {
				j++
			}
			remaining := j - i
			pos := i
			for remaining >= 2 && len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != frameLink {
					break
				}
				stack = stack[:len(stack)-1]
				closeEnd := pos + 2
				links = append(links, depthSpan{&span{top.openPos, closeEnd}, top.depth})
				pos = closeEnd
				remaining -= 2
			}
			i = j
		default:
			i++
		}
	}
	return
}

// classifyTemplates splits the raw `{{…}}`-shaped spans from the
// bracket pass into templates and parser functions, rejecting any
// whose name portion contains a raw newline: rejected spans are simply
// dropped, not added to either list, while their already-finalized
// children remain untouched.
func classifyTemplates(buf runeBuffer, tpf, params, links []depthSpan, shields []shieldSpan) (templates, parserFns []depthSpan) {
	var skip []*span
	for _, e := range tpf {
		skip = append(skip, e.sp)
	}
	for _, e := range params {
		skip = append(skip, e.sp)
	}
	for _, e := range links {
		skip = append(skip, e.sp)
	}
	for _, sh := range shields {
		skip = append(skip, sh.sp)
	}

	for _, e := range tpf {
		sp := e.sp
		lo, hi := sp.start+2, sp.end-2
		if hi < lo {
			continue
		}
		colon, pipes := topLevelMarks(buf, lo, hi, skip, sp)
		nameEnd := hi
		if len(pipes) > 0 {
			nameEnd = pipes[0]
		}
		isPF := colon != -1
		if isPF {
			nameEnd = colon
		}
		if hasInternalNewline(buf, lo, nameEnd) {
			continue
		}
		if isPF {
			parserFns = append(parserFns, e)
		} else {
			templates = append(templates, e)
		}
	}
	return
}

// hasInternalNewline reports whether buf[lo:hi], after stripping any
// leading and trailing whitespace (newlines included), still contains a
// newline. A name may be wrapped in whitespace (`'{{\nرنگ\n|متن}}'` and
// `'{{cite\n    |x}}'` are valid templates) but may not have a newline
// in its interior (`'{{\nColor\nbox\n|x}}'` is not).
func hasInternalNewline(buf runeBuffer, lo, hi int) bool {
	for lo < hi && isWikiSpace(buf[lo]) {
		lo++
	}
	for hi > lo && isWikiSpace(buf[hi-1]) {
		hi--
	}
	for i := lo; i < hi; i++ {
		if buf[i] == '\n' {
			return true
		}
	}
	return false
}

// topLevelMarks scans buf[lo:hi] for the first unshielded, non-nested
// ':' occurring before any unshielded, non-nested '|', plus every
// unshielded, non-nested '|' position. self, if non-nil, is excluded
// from the skip set (it denotes the span being classified itself, which
// would otherwise mask its own interior).
func topLevelMarks(buf runeBuffer, lo, hi int, skip []*span, self *span) (colon int, pipes []int) {
	colon = -1
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
		switch buf[i] {
		case '|':
			pipes = append(pipes, i)
			i++
		case ':':
			if colon == -1 && len(pipes) == 0 {
				colon = i
			}
			i++
		default:
			i++
		}
	}
	return
}

// DefaultProtocols lists the external-link protocol prefixes
// recognized, case-insensitively.
var DefaultProtocols = []string{
	"http://", "https://", "ftp://", "mailto:", "//",
}

// externalLinkPass recognizes a bracketed `[URL text]` form when the
// URL is preceded by a lone `[`, or a bare URL otherwise. It runs
// independently of the bracket pass since its delimiters never collide
// with `{{`/`[[`.
func externalLinkPass(buf runeBuffer, shields []shieldSpan) []*span {
	return externalLinkPassWith(buf, shields, DefaultProtocols)
}

func externalLinkPassWith(buf runeBuffer, shields []shieldSpan, protocols []string) []*span {
	var out []*span
	n := len(buf)
	i := 0
	for i < n {
		if end, ok := shieldedEnd(shields, i); ok {
			i = end
			continue
		}
		proto := matchProtocol(buf, i, protocols)
		if proto == "" {
			i++
			continue
		}
		bracketed := i > 0 && buf[i-1] == '[' && !(i > 1 && buf[i-2] == '[')
		if bracketed {
			end, consumed := scanBracketedLink(buf, i)
			if consumed {
				out = append(out, &span{i - 1, end})
				i = end
				continue
			}
		}
		end := scanBareURL(buf, i)
		out = append(out, &span{i, end})
		i = end
	}
	return out
}

func matchProtocol(buf runeBuffer, i int, protocols []string) string {
	for _, p := range protocols {
		if hasPrefixAtFold(buf, i, p) {
			return p
		}
	}
	return ""
}

// scanBracketedLink scans the `[URL text]` form starting at the URL
// (buf[i-1] is the opening '['); it returns the position just past the
// closing ']' and whether a closing bracket was actually found.
func scanBracketedLink(buf runeBuffer, i int) (int, bool) {
	n := len(buf)
	j := i
	for j < n && buf[j] != ']' && !isWikiSpace(buf[j]) {
		j++
	}
	if j < n && buf[j] == ']' {
		return j + 1, true
	}
	for j < n && buf[j] != ']' {
		j++
	}
	if j >= n {
		return 0, false
	}
	return j + 1, true
}

func scanBareURL(buf runeBuffer, i int) int {
	n := len(buf)
	j := i
	for j < n {
		r := buf[j]
		if isWikiSpace(r) || r == ')' || r == ']' || r == '}' {
			break
		}
		j++
	}
	return j
}

func isWikiSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func hasPrefixAt(buf runeBuffer, i int, lit string) bool {
	lr := []rune(lit)
	if i+len(lr) > len(buf) {
		return false
	}
	for k, r := range lr {
		if buf[i+k] != r {
			return false
		}
	}
	return true
}

func hasPrefixAtFold(buf runeBuffer, i int, lit string) bool {
	lr := []rune(lit)
	if i+len(lr) > len(buf) {
		return false
	}
	for k, r := range lr {
		if toLowerRune(buf[i+k]) != toLowerRune(r) {
			return false
		}
	}
	return true
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func indexFrom(buf runeBuffer, from int, lit string) int {
	s := string(buf[min(from, len(buf)):])
	idx := strings.Index(s, lit)
	if idx < 0 {
		return -1
	}
	return from + len([]rune(s[:idx]))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
