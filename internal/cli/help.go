// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WaveColor).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(LabelColor).
				MarginTop(1)

	helpNameStyle = lipgloss.NewStyle().
			Foreground(WaveColor).
			Bold(true)

	helpDefaultStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Italic(true)
)

type entry struct {
	name       string
	help       string
	defaultVal string
}

// StyledHelpPrinter renders kong help with the waveform palette. It lists
// the commands, arguments and flags of the selected command, or of the
// application when no command is selected yet. With options.Compact only
// the first level of commands is listed, by name; otherwise every leaf
// command is listed with its full usage.
func StyledHelpPrinter(options kong.HelpOptions) kong.HelpPrinter {
	return func(_ kong.HelpOptions, ctx *kong.Context) error {
		node := ctx.Selected()
		if node == nil {
			node = ctx.Model.Node
		}

		var sb strings.Builder

		sb.WriteString(helpTitleStyle.Render(ctx.Model.Name))
		sb.WriteString("\n")
		if node.Help != "" {
			sb.WriteString(node.Help)
			sb.WriteString("\n")
		}

		sb.WriteString(helpSectionStyle.Render("Usage:"))
		sb.WriteString("\n  ")
		sb.WriteString(node.Summary())
		sb.WriteString("\n")

		writeSection(&sb, "Commands:", commands(node, options.Compact))
		writeSection(&sb, "Arguments:", arguments(node))
		writeSection(&sb, "Flags:", flags(ctx, node))

		sb.WriteString("\n")
		fmt.Fprint(ctx.Stdout, sb.String())
		return nil
	}
}

func writeSection(sb *strings.Builder, title string, entries []entry) {
	if len(entries) == 0 {
		return
	}

	sb.WriteString("\n")
	sb.WriteString(helpSectionStyle.Render(title))
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString("  ")
		sb.WriteString(helpNameStyle.Render(e.name))
		if e.help != "" {
			sb.WriteString("  ")
			sb.WriteString(e.help)
		}
		if e.defaultVal != "" {
			sb.WriteString(" ")
			sb.WriteString(helpDefaultStyle.Render("(default: " + e.defaultVal + ")"))
		}
		sb.WriteString("\n")
	}
}

func commands(node *kong.Node, compact bool) []entry {
	var out []entry

	if compact {
		for _, child := range node.Children {
			if child.Hidden {
				continue
			}
			out = append(out, entry{name: child.Name, help: child.Help})
		}
		return out
	}

	for _, leaf := range node.Leaves(true) {
		out = append(out, entry{name: leaf.Summary(), help: leaf.Help})
	}
	return out
}

func arguments(node *kong.Node) []entry {
	var out []entry
	for _, arg := range node.Positional {
		out = append(out, entry{name: arg.Summary(), help: arg.Help})
	}
	return out
}

func flags(ctx *kong.Context, node *kong.Node) []entry {
	out := []entry{{name: "-h, --help", help: "Show context-sensitive help."}}

	all := node.Flags
	if node != ctx.Model.Node {
		all = append(ctx.Model.Node.Flags[:len(ctx.Model.Node.Flags):len(ctx.Model.Node.Flags)], all...)
	}

	for _, f := range all {
		if f.Name == "help" || f.Hidden {
			continue
		}

		name := fmt.Sprintf("--%s", f.Name)
		if f.Short != 0 {
			name = fmt.Sprintf("-%c, --%s", f.Short, f.Name)
		}
		if !f.IsBool() && f.PlaceHolder != "" {
			name += "=" + strings.ToUpper(f.PlaceHolder)
		}

		// only meaningful defaults
		defaultVal := ""
		if f.HasDefault && !f.IsBool() && f.Default != "" && f.Default != "0" {
			defaultVal = f.Default
		}

		out = append(out, entry{name: name, help: f.Help, defaultVal: defaultVal})
	}

	return out
}
