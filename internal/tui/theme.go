package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pytype/internal/model"
)

type palette struct {
	text        lipgloss.Color
	muted       lipgloss.Color
	accent      lipgloss.Color
	correct     lipgloss.Color
	incorrect   lipgloss.Color
	pending     lipgloss.Color
	currentLine lipgloss.Color
	border      lipgloss.Color
	gutter      lipgloss.Color
}

var palettes = map[model.Theme]palette{
	model.ThemeAurora: {
		text:        "#E6EDF3",
		muted:       "#8B96A8",
		accent:      "#7DD3C0",
		correct:     "#A6E3A1",
		incorrect:   "#FF5F7E",
		pending:     "#5C6773",
		currentLine: "#C3B1F5",
		border:      "#3B4658",
		gutter:      "#52607A",
	},
	model.ThemeMidnight: {
		text:        "#D8DEE9",
		muted:       "#7B88A1",
		accent:      "#81A1C1",
		correct:     "#88C0D0",
		incorrect:   "#BF616A",
		pending:     "#4C566A",
		currentLine: "#B48EAD",
		border:      "#2E3440",
		gutter:      "#4C566A",
	},
	model.ThemeSunrise: {
		text:        "#FDF6E3",
		muted:       "#B5A48B",
		accent:      "#F4A261",
		correct:     "#E9C46A",
		incorrect:   "#E63946",
		pending:     "#7A6A58",
		currentLine: "#F7B2A5",
		border:      "#5A4636",
		gutter:      "#8A7560",
	},
}

type styles struct {
	correct     lipgloss.Style
	incorrect   lipgloss.Style
	pending     lipgloss.Style
	currentLine lipgloss.Style
	gutter      lipgloss.Style

	title       lipgloss.Style
	subtitle    lipgloss.Style
	badge       lipgloss.Style
	muted       lipgloss.Style
	panel       lipgloss.Style
	sidebar     lipgloss.Style
	item        lipgloss.Style
	activeItem  lipgloss.Style
	metricLabel lipgloss.Style
	metricValue lipgloss.Style
	copied      lipgloss.Style
}

func newStyles(theme model.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[model.ThemeAurora]
	}
	return styles{
		correct:     lipgloss.NewStyle().Foreground(p.correct),
		incorrect:   lipgloss.NewStyle().Foreground(p.incorrect),
		pending:     lipgloss.NewStyle().Foreground(p.pending),
		currentLine: lipgloss.NewStyle().Foreground(p.currentLine),
		gutter:      lipgloss.NewStyle().Foreground(p.gutter),

		title:    lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		subtitle: lipgloss.NewStyle().Foreground(p.muted),
		badge:    lipgloss.NewStyle().Foreground(p.text).Background(p.border).Padding(0, 1),
		muted:    lipgloss.NewStyle().Foreground(p.muted),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border).
			Padding(0, 1),
		sidebar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(p.border).
			Padding(0, 1),
		item:        lipgloss.NewStyle().Foreground(p.text),
		activeItem:  lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		metricLabel: lipgloss.NewStyle().Foreground(p.muted),
		metricValue: lipgloss.NewStyle().Foreground(p.text).Bold(true),
		copied:      lipgloss.NewStyle().Foreground(p.correct).Bold(true),
	}
}
