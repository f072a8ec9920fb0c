// Package ansi holds the style registry: the fixed table mapping tag names
// to raw terminal control codes. The registry is built once at startup and
// never mutated afterwards, so it is safe to share across goroutines.
package ansi

import (
	"sort"
	"strings"
)

// Reset clears all colors and decorations.
const Reset = "\033[0;0m"

// Per-group "off" codes, used by the tags listing and by callers that want
// to turn off a single style without resetting everything.
const (
	ForegroundOff = "\033[39m"
	UnderlineOff  = "\033[24m"
	BackgroundOff = "\033[49m"
	BoldOff       = "\033[22m"
	ItalicOff     = "\033[23m"
	ReverseOff    = "\033[27m"
)

// Style is one registry entry: the code that turns a style on and the code
// that turns just that style off.
type Style struct {
	Code string
	Off  string
}

// Registry maps normalized tag names to styles. Lookups are case-insensitive.
type Registry struct {
	styles map[string]Style
}

// entry is a row of the built-in table. Aliases share the same codes.
type entry struct {
	names []string
	code  string
	off   string
}

// The built-in table mirrors standard ANSI SGR codes: bright foreground
// colors (90-97), standard ("dark") foreground colors (30-37), the matching
// background variants (100-107 and 40-47), and the four decorations.
var builtins = []entry{
	// Light foreground colors
	{[]string{"grey", "gray"}, "\033[90m", ForegroundOff},
	{[]string{"red"}, "\033[91m", ForegroundOff},
	{[]string{"green"}, "\033[92m", ForegroundOff},
	{[]string{"yellow"}, "\033[93m", ForegroundOff},
	{[]string{"blue"}, "\033[94m", ForegroundOff},
	{[]string{"magenta"}, "\033[95m", ForegroundOff},
	{[]string{"cyan"}, "\033[96m", ForegroundOff},
	{[]string{"white"}, "\033[97m", ForegroundOff},

	// Dark foreground colors
	{[]string{"darkgrey", "darkgray"}, "\033[30m", ForegroundOff},
	{[]string{"darkred"}, "\033[31m", ForegroundOff},
	{[]string{"darkgreen"}, "\033[32m", ForegroundOff},
	{[]string{"darkyellow"}, "\033[33m", ForegroundOff},
	{[]string{"darkblue"}, "\033[34m", ForegroundOff},
	{[]string{"darkmagenta"}, "\033[35m", ForegroundOff},
	{[]string{"darkcyan"}, "\033[36m", ForegroundOff},
	{[]string{"darkwhite"}, "\033[37m", ForegroundOff},

	// Light background colors
	{[]string{"bggrey", "bggray"}, "\033[100m", BackgroundOff},
	{[]string{"bgred"}, "\033[101m", BackgroundOff},
	{[]string{"bggreen"}, "\033[102m", BackgroundOff},
	{[]string{"bgyellow"}, "\033[103m", BackgroundOff},
	{[]string{"bgblue"}, "\033[104m", BackgroundOff},
	{[]string{"bgmagenta"}, "\033[105m", BackgroundOff},
	{[]string{"bgcyan"}, "\033[106m", BackgroundOff},
	{[]string{"bgwhite"}, "\033[107m", BackgroundOff},

	// Dark background colors
	{[]string{"bgdarkgrey", "bgdarkgray"}, "\033[40m", BackgroundOff},
	{[]string{"bgdarkred"}, "\033[41m", BackgroundOff},
	{[]string{"bgdarkgreen"}, "\033[42m", BackgroundOff},
	{[]string{"bgdarkyellow"}, "\033[43m", BackgroundOff},
	{[]string{"bgdarkblue"}, "\033[44m", BackgroundOff},
	{[]string{"bgdarkmagenta"}, "\033[45m", BackgroundOff},
	{[]string{"bgdarkcyan"}, "\033[46m", BackgroundOff},
	{[]string{"bgdarkwhite"}, "\033[47m", BackgroundOff},

	// Text decorations
	{[]string{"bold", "b"}, "\033[1m", BoldOff},
	{[]string{"italic", "i"}, "\033[3m", ItalicOff},
	{[]string{"underlined", "u"}, "\033[4m", UnderlineOff},
	{[]string{"reverse", "r"}, "\033[7m", ReverseOff},

	// Reset everything
	{[]string{"none", "reset"}, Reset, Reset},
}

var defaultRegistry = build(nil)

// Default returns the process-wide registry of built-in styles.
func Default() *Registry {
	return defaultRegistry
}

// NewRegistry returns a registry with the built-in styles plus any custom
// entries. Custom entries may shadow built-ins; names are normalized to
// lower case. The returned registry is independent of its inputs and must
// not be mutated by callers.
func NewRegistry(custom map[string]Style) *Registry {
	return build(custom)
}

func build(custom map[string]Style) *Registry {
	styles := make(map[string]Style, 2*len(builtins)+len(custom))
	for _, e := range builtins {
		for _, name := range e.names {
			styles[name] = Style{Code: e.code, Off: e.off}
		}
	}
	for name, s := range custom {
		if s.Off == "" {
			s.Off = Reset
		}
		styles[strings.ToLower(name)] = s
	}
	return &Registry{styles: styles}
}

// Lookup resolves a tag name to its style. Names are matched
// case-insensitively.
func (r *Registry) Lookup(name string) (Style, bool) {
	s, ok := r.styles[strings.ToLower(name)]
	return s, ok
}

// Has reports whether the registry contains the given tag name.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns every registered tag name, aliases included, in sorted
// order. The slice is freshly allocated on each call.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.styles))
	for name := range r.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered names, counting aliases.
func (r *Registry) Len() int {
	return len(r.styles)
}
