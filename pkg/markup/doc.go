/*
Package markup interprets inline style tags in console text.

Input strings carry HTML-like tags naming entries of the style registry:

	out, err := markup.Render("<blue>hello <bold>world</bold></blue>", markup.Options{})

Render rewrites each tag into its raw terminal control code and appends a
final reset. Tags nest, and closing is name-addressed rather than strictly
LIFO: closing an inner tag resets the terminal and reasserts every style
still open, since terminal styling is global and not lexically scoped.

A tag is escaped by a forward slash directly before it: "/<blue>" renders
the text "<blue>" instead of a color code. Unrecognized tags are fatal in
strict mode and degrade to literal text otherwise. A closing tag with no
earlier matching open is always an error.

The interpreter performs no I/O and keeps no state between calls; handing
the rendered string to a writer is the printer package's job.
*/
package markup
