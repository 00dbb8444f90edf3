//
// SPDX-License-Identifier: GPL-3.0-or-later
//

package combinator

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// RenderUsage walks meta and produces a one-line usage synopsis: each
// required element inline, each optional element in brackets,
// alternatives separated by `|`, repetitions suffixed with `...`, and
// commands rendered as a single `<COMMAND>` placeholder (spec §4.9).
func RenderUsage(meta Meta) string {
	return usageToken(meta)
}

func usageToken(m Meta) string {
	switch m.Kind {
	case MetaFlag:
		return flagDisplay(m)

	case MetaOption:
		return flagDisplay(m) + " " + placeholderOrDefault(m)

	case MetaPositional:
		return placeholderOrDefault(m)

	case MetaCommand:
		return "<COMMAND>"

	case MetaAnd:
		parts := make([]string, 0, len(m.Children))
		for _, c := range m.Children {
			if t := usageToken(c); t != "" {
				parts = append(parts, t)
			}
		}
		return strings.Join(parts, " ")

	case MetaOr:
		parts := make([]string, 0, len(m.Children))
		for _, c := range m.Children {
			parts = append(parts, usageToken(c))
		}
		return "(" + strings.Join(parts, " | ") + ")"

	case MetaDecorated:
		inner := usageToken(*m.Inner)
		switch m.Decoration {
		case DecorationOptional, DecorationFallback:
			return "[" + inner + "]"
		case DecorationMany, DecorationSome:
			return inner + "..."
		default:
			return inner
		}

	default:
		return ""
	}
}

func flagDisplay(m Meta) string {
	if m.HasShort {
		return "-" + string(m.Short)
	}
	if m.Long != "" {
		return "--" + m.Long
	}
	return ""
}

func placeholderOrDefault(m Meta) string {
	if m.Placeholder != "" {
		return m.Placeholder
	}
	return "ARG"
}

// RenderHelp produces the full `--help` body for meta: an optional
// description/header, the usage synopsis, an aligned options table, a
// commands table, and an optional footer (spec §4.9).
func RenderHelp(meta Meta, info Info) string {
	var b strings.Builder

	if info.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", info.Description)
	}
	if info.Header != "" {
		fmt.Fprintf(&b, "%s\n\n", info.Header)
	}
	fmt.Fprintf(&b, "Usage: %s\n", usageToken(meta))

	var flags []Meta
	collectFlags(meta, &flags)
	if len(flags) > 0 {
		fmt.Fprintf(&b, "\nOptions:\n")
		renderFlagTable(&b, flags)
	}

	var cmds []Meta
	collectCommands(meta, &cmds)
	if len(cmds) > 0 {
		fmt.Fprintf(&b, "\nCommands:\n")
		renderCommandTable(&b, cmds)
	}

	if info.Footer != "" {
		fmt.Fprintf(&b, "\n%s\n", info.Footer)
	}
	return b.String()
}

func collectFlags(m Meta, out *[]Meta) {
	switch m.Kind {
	case MetaFlag, MetaOption:
		*out = append(*out, m)
	case MetaAnd, MetaOr:
		for _, c := range m.Children {
			collectFlags(c, out)
		}
	case MetaDecorated:
		collectFlags(*m.Inner, out)
	}
}

// isHelpShadowed reports whether meta already declares its own `-h` or
// `--help` flag/option, in which case the early `--help`/`-h`
// interception must stand down and let that author-defined parser run
// instead (spec §4.8's "if not shadowed by an author-defined parser"
// clause), the same way the teacher's `early.go` only treats `-h`/
// `--help` as early when no registered option already claims it.
func isHelpShadowed(meta Meta) bool {
	var flags []Meta
	collectFlags(meta, &flags)
	for _, f := range flags {
		if f.HasShort && f.Short == 'h' {
			return true
		}
		if f.Long == "help" {
			return true
		}
	}
	return false
}

func collectCommands(m Meta, out *[]Meta) {
	switch m.Kind {
	case MetaCommand:
		*out = append(*out, m)
	case MetaAnd, MetaOr:
		for _, c := range m.Children {
			collectCommands(c, out)
		}
	case MetaDecorated:
		collectCommands(*m.Inner, out)
	}
}

func renderFlagTable(b *strings.Builder, flags []Meta) {
	var order []string
	groups := map[string][]Meta{}
	for _, f := range flags {
		if _, ok := groups[f.Group]; !ok {
			order = append(order, f.Group)
		}
		groups[f.Group] = append(groups[f.Group], f)
	}

	for _, group := range order {
		if group != "" {
			fmt.Fprintf(b, "  %s:\n", group)
		}
		tw := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
		for _, f := range groups[group] {
			short, long := "", ""
			if f.HasShort {
				short = "-" + string(f.Short)
			}
			if f.Long != "" {
				long = "--" + f.Long
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", short, long, f.Placeholder, f.Help)
		}
		tw.Flush()
	}
}

func renderCommandTable(b *strings.Builder, cmds []Meta) {
	tw := tabwriter.NewWriter(b, 0, 4, 2, ' ', 0)
	for _, c := range cmds {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name, c.Help)
	}
	tw.Flush()
}
