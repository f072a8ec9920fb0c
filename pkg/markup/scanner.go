package markup

import (
	"strings"

	"github.com/arthur-debert/tagline/pkg/ansi"
)

// tagKind classifies one bracketed span of the source string.
type tagKind int

const (
	tagOpen tagKind = iota
	tagClose
	tagEscaped
	tagInvalid
)

// tag is the result of classifying a single <...> span. Tags are created
// transiently per scan iteration and never persisted.
type tag struct {
	kind  tagKind
	name  string // normalized name, no brackets, no leading slash
	raw   string // bracketed text as written, e.g. "</blue>"
	start int    // offset of '<' (of the escaping '/' for escaped tags)
	end   int    // offset one past '>'
	style ansi.Style
}

// scanner walks the source string left to right. pos is the cursor past
// which nothing has been classified yet; offsets in ignored were already
// classified as literal text and are never re-scanned as tag delimiters.
// The ignored set only ever grows, which bounds the number of scan
// iterations by the input length and guarantees termination: every
// iteration either advances pos or adds a span to ignored.
type scanner struct {
	src     string
	pos     int
	reg     *ansi.Registry
	ignored map[int]struct{}
}

func newScanner(src string, reg *ansi.Registry) *scanner {
	return &scanner{src: src, reg: reg, ignored: make(map[int]struct{})}
}

// next locates and classifies the next tag at or after the cursor. It
// returns false when no <...> span remains outside the ignored set.
func (s *scanner) next() (tag, bool) {
	start := s.indexFrom(s.pos, '<')
	if start < 0 {
		return tag{}, false
	}
	end := s.indexFrom(start+1, '>')
	if end < 0 {
		return tag{}, false
	}

	raw := s.src[start : end+1]

	// A '/' immediately before the '<' escapes the tag, provided the
	// slash has not already been consumed by a previous span.
	if start > s.pos && s.src[start-1] == '/' {
		return tag{kind: tagEscaped, raw: raw, start: start - 1, end: end + 1}, true
	}

	candidate := raw[1 : len(raw)-1]
	if strings.HasPrefix(candidate, "/") {
		name := strings.ToLower(candidate[1:])
		if style, ok := s.reg.Lookup(name); ok {
			return tag{kind: tagClose, name: name, raw: raw, start: start, end: end + 1, style: style}, true
		}
		return tag{kind: tagInvalid, name: strings.ToLower(candidate), raw: raw, start: start, end: end + 1}, true
	}

	name := strings.ToLower(candidate)
	if style, ok := s.reg.Lookup(name); ok {
		return tag{kind: tagOpen, name: name, raw: raw, start: start, end: end + 1, style: style}, true
	}
	return tag{kind: tagInvalid, name: name, raw: raw, start: start, end: end + 1}, true
}

// indexFrom returns the first offset at or after from holding c that is not
// in the ignored set, or -1.
func (s *scanner) indexFrom(from int, c byte) int {
	for i := from; i < len(s.src); i++ {
		if s.src[i] != c {
			continue
		}
		if _, skip := s.ignored[i]; skip {
			continue
		}
		return i
	}
	return -1
}

// ignore records every offset of the tag's span as literal text. The cursor
// does not move; the span is emitted untouched with the surrounding literal
// text once the next tag (or the end of input) is reached.
func (s *scanner) ignore(t tag) {
	for i := t.start; i < t.end; i++ {
		s.ignored[i] = struct{}{}
	}
}
