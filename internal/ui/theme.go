package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Heading, Muted, Accent, Success, Error lipgloss.Style
	Focus, Question, Answer, Strong, Kbd          lipgloss.Style
	Banner, Frame                                 lipgloss.Style

	SymCollapsed, SymExpanded, SymFocus, SymBullet string
	BarFull, BarEmpty                              string
}

var current = classic()

// ThemeNames lists the accepted SetTheme arguments.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }

func classic() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Focus:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Question: lipgloss.NewStyle(),
		Answer:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Strong:   lipgloss.NewStyle().Bold(true),
		Kbd:      lipgloss.NewStyle().Reverse(true),
		Banner: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("220")).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1),
		SymCollapsed: "▸", SymExpanded: "▾", SymFocus: ">", SymBullet: "•",
		BarFull: "█", BarEmpty: "░",
	}
}

func neon() Theme {
	t := classic()
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	t.Heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	t.Accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	t.Focus = lipgloss.NewStyle().Bold(true).Reverse(true)
	t.Banner = t.Banner.BorderForeground(lipgloss.Color("13"))
	t.Frame = t.Frame.BorderForeground(lipgloss.Color("14"))
	t.SymCollapsed, t.SymExpanded = "◇", "◆"
	return t
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title: plain, Heading: plain, Muted: plain, Accent: plain, Success: plain, Error: plain,
		Focus: plain, Question: plain, Answer: plain, Strong: plain, Kbd: plain,
		Banner: plain.Border(lipgloss.NormalBorder(), false, false, false, true).Padding(0, 1),
		Frame:  plain.Border(lipgloss.NormalBorder()).Padding(0, 1),

		SymCollapsed: "+", SymExpanded: "-", SymFocus: ">", SymBullet: "*",
		BarFull: "#", BarEmpty: ".",
	}
}
