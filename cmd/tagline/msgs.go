package main

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort      = "Inline style markup for terminal output"
	MsgRenderShort    = "Render style-tagged text to the terminal"
	MsgStripShort     = "Remove style tags from text"
	MsgTagsShort      = "List the available style tags"
	MsgLoremShort     = "Generate placeholder text"
	MsgRomanShort     = "Convert between integers and roman numerals"
	MsgWordsShort     = "Spell a number out in words"
	MsgPriceShort     = "Format an amount as a price"
	MsgBannerShort    = "Render text as large block letters"
	MsgMenuShort      = "Draw a bordered menu from options"
	MsgCountdownShort = "Run a countdown timer"
	MsgGenConfigShort = "Print the default configuration file"
	MsgGuideShort     = "Show the usage guide"
	MsgVersionShort   = "Print version information"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagStrict  = "Fail on unrecognized or malformed tags"
	MsgFlagColor   = "When to emit control codes (auto, always, never)"
	MsgFlagSep     = "Separator between arguments"
	MsgFlagEnd     = "String appended after the output"
	MsgFlagNoNL    = "Do not append a trailing newline"
	MsgFlagFormat  = "Output format (text, toml, yaml, xml)"
)

const MsgRootLong = `tagline interprets inline style markup in terminal text. Wrap a span in
a color or decoration tag and it is rewritten into the matching control
codes:

  tagline render "deploy <green>succeeded</green> in <bold>3s</bold>"

Tags nest, close in any order, and can be escaped with a leading slash
(/<blue>). Custom tags can be added in the configuration file; see
'tagline guide' for the full story.`

const MsgRenderLong = `Render joins its arguments, rewrites style tags into terminal control
codes, and prints the result. With no arguments, text is read from
standard input.

When standard output is not a terminal, or --color=never is set, tags
are stripped instead so pipes receive clean text.`
