package main

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tagline/pkg/ansi"
	"github.com/arthur-debert/tagline/pkg/config"
	"github.com/arthur-debert/tagline/pkg/errors"
	"github.com/arthur-debert/tagline/pkg/printer"
)

// tagEntry is the export shape shared by the structured formats.
type tagEntry struct {
	Name string `toml:"name" yaml:"name"`
	Code string `toml:"code" yaml:"code"`
	Off  string `toml:"off" yaml:"off"`
}

func newTagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: MsgTagsShort,
		Long: `Tags lists every style tag the interpreter knows, built-in and custom,
with a live sample of each. Structured formats export the raw control
codes instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			reg := cfg.Registry()

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "", "text":
				p, err := newPrinter(cmd, cfg)
				if err != nil {
					return err
				}
				return printTagsText(p, reg)
			case "toml":
				return printTagsTOML(cmd.OutOrStdout(), reg)
			case "yaml":
				return printTagsYAML(cmd.OutOrStdout(), reg)
			case "xml":
				return printTagsXML(cmd.OutOrStdout(), reg)
			}
			return errors.Newf(errors.ErrInvalidInput, "unknown format %q", format)
		},
	}

	cmd.Flags().String("format", "text", MsgFlagFormat)
	cmd.Flags().String("color", "", MsgFlagColor)

	return cmd
}

func printTagsText(p *printer.Printer, reg *ansi.Registry) error {
	for _, name := range reg.Names() {
		sample := fmt.Sprintf("<%s>%s</%s>", name, name, name)
		if style, ok := reg.Lookup(name); ok && style.Code == ansi.Reset {
			// Reset tags take no closing tag.
			sample = fmt.Sprintf("<%s>%s", name, name)
		}
		if err := p.Print(sample); err != nil {
			return err
		}
	}
	return nil
}

func tagEntries(reg *ansi.Registry) []tagEntry {
	names := reg.Names()
	entries := make([]tagEntry, 0, len(names))
	for _, name := range names {
		style, _ := reg.Lookup(name)
		entries = append(entries, tagEntry{Name: name, Code: style.Code, Off: style.Off})
	}
	return entries
}

func printTagsTOML(w io.Writer, reg *ansi.Registry) error {
	doc := struct {
		Tags []tagEntry `toml:"tags"`
	}{Tags: tagEntries(reg)}

	data, err := toml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrRenderFailed, "failed to marshal tags as TOML")
	}
	_, err = w.Write(data)
	return err
}

func printTagsYAML(w io.Writer, reg *ansi.Registry) error {
	doc := struct {
		Tags []tagEntry `yaml:"tags"`
	}{Tags: tagEntries(reg)}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrRenderFailed, "failed to marshal tags as YAML")
	}
	_, err = w.Write(data)
	return err
}

func printTagsXML(w io.Writer, reg *ansi.Registry) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("tags")
	for _, entry := range tagEntries(reg) {
		el := root.CreateElement("tag")
		el.CreateAttr("name", entry.Name)
		el.CreateAttr("code", entry.Code)
		el.CreateAttr("off", entry.Off)
	}
	doc.Indent(2)
	_, err := doc.WriteTo(w)
	if err != nil {
		return errors.Wrap(err, errors.ErrRenderFailed, "failed to write tags as XML")
	}
	return nil
}
