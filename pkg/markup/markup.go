package markup

import (
	"strings"

	"github.com/arthur-debert/tagline/pkg/ansi"
	"github.com/arthur-debert/tagline/pkg/errors"
)

// Options controls how Render treats tags it cannot resolve.
type Options struct {
	// Strict makes unrecognized tags fatal. When false they degrade to
	// literal text.
	Strict bool

	// Registry resolves tag names to control codes. Nil means the
	// built-in registry.
	Registry *ansi.Registry
}

// Render rewrites inline style tags in text into raw terminal control
// codes and appends a final reset. The reset is appended unconditionally,
// even when every tag was closed, so styling never leaks into unrelated
// output that follows.
//
// Closing an inner tag while outer tags remain open emits a reset followed
// by the codes of every still-active tag, since terminal styling is global
// rather than lexically scoped. Closing is name-addressed: </blue> removes
// the blue code wherever it sits in the active sequence, so interleaved
// tags like <blue><bold></blue></bold> are accepted.
//
// The reset tags (<none>, <reset>) deactivate every open style and take
// no closing tag; the closing form (</none>) is accepted and behaves the
// same, it is never an unmatched close.
//
// On error no partial output is returned.
func Render(text string, opts Options) (string, error) {
	reg := opts.Registry
	if reg == nil {
		reg = ansi.Default()
	}
	out, err := render(text, reg, opts.Strict, false)
	if err != nil {
		return "", err
	}
	return out + ansi.Reset, nil
}

// Strip removes recognized style tags from text without emitting any
// control codes. Escaped tags lose their escaping slash, unrecognized
// tags stay as written, and unmatched closing tags are dropped silently.
// Used for plain-text output where Render's codes would be noise.
func Strip(text string) string {
	return StripWith(text, nil)
}

// StripWith is Strip against a specific registry. Nil means the built-in
// registry.
func StripWith(text string, reg *ansi.Registry) string {
	if reg == nil {
		reg = ansi.Default()
	}
	out, _ := render(text, reg, false, true)
	return out
}

// render runs the scan loop. In plain mode tags resolve to nothing
// instead of control codes and nothing is fatal.
func render(text string, reg *ansi.Registry, strict, plain bool) (string, error) {
	sc := newScanner(text, reg)
	var out strings.Builder
	var active []ansi.Style

	for {
		t, ok := sc.next()
		if !ok {
			break
		}

		switch t.kind {
		case tagOpen:
			out.WriteString(text[sc.pos:t.start])
			if !plain {
				if t.style.Code == ansi.Reset {
					// A reset-all tag needs no closing tag and
					// deactivates everything before it.
					active = active[:0]
					out.WriteString(ansi.Reset)
				} else {
					active = append(active, t.style)
					out.WriteString(t.style.Code)
				}
			}
			sc.pos = t.end

		case tagClose:
			removed := false
			if t.style.Code == ansi.Reset {
				active = active[:0]
				removed = true
			} else {
				for i, s := range active {
					if s.Code == t.style.Code {
						active = append(active[:i], active[i+1:]...)
						removed = true
						break
					}
				}
			}
			if !removed && !plain {
				return "", errors.Newf(errors.ErrUnmatchedClosingTag,
					"no opening '%s' tag", t.name).
					WithDetail("tag", t.raw).
					WithDetail("offset", t.start)
			}
			out.WriteString(text[sc.pos:t.start])
			if !plain {
				out.WriteString(ansi.Reset)
				for _, s := range active {
					out.WriteString(s.Code)
				}
			}
			sc.pos = t.end

		case tagEscaped:
			out.WriteString(text[sc.pos:t.start])
			out.WriteString(t.raw)
			sc.pos = t.end

		case tagInvalid:
			if strict {
				code := errors.ErrUnrecognizedTag
				msg := "unrecognized tag"
				if strings.HasPrefix(t.raw, "</") {
					code = errors.ErrInvalidTag
					msg = "invalid closing tag"
				}
				return "", errors.Newf(code, "%s: '%s'", msg, t.raw).
					WithDetail("tag", t.raw).
					WithDetail("offset", t.start)
			}
			// Lenient mode: the span becomes literal text and is never
			// re-scanned. The cursor stays put; the span is emitted with
			// the surrounding text on the next iteration.
			sc.ignore(t)
		}
	}

	out.WriteString(text[sc.pos:])
	return out.String(), nil
}
