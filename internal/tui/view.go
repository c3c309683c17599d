package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/pytype/internal/typing"
)

const (
	sidebarWidth = 30
	columnGap    = 1
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return m.renderCode(0)
	}

	mainWidth := m.width
	var sidebar string
	if !m.settings.Zen {
		sidebar = m.renderSidebar()
		mainWidth -= lipgloss.Width(sidebar) + columnGap
	}
	if mainWidth < 10 {
		mainWidth = 10
	}

	sections := make([]string, 0, 5)
	if !m.settings.Zen {
		sections = append(sections, m.renderHeader(mainWidth))
	}
	panel := m.styles.panel.Width(mainWidth - 2)
	codeWidth := mainWidth - panel.GetHorizontalFrameSize()
	sections = append(sections,
		panel.Render(m.renderCode(codeWidth)),
		m.renderMetrics(),
		m.renderStatus(),
		m.help.View(m.keys),
	)
	main := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if sidebar == "" {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, strings.Repeat(" ", columnGap), main)
}

func (m *Model) renderCode(width int) string {
	reference := []rune(m.session.Snippet())
	cursorIndex := -1
	if typed := m.result.Typed; typed < len(reference) {
		cursorIndex = typed
	}
	lines := buildLines(reference, m.result.Classes, cursorIndex, m.styles, m.settings.Hints)
	return renderCode(lines, width, m.settings.LineNumbers, m.styles)
}

func (m *Model) renderSidebar() string {
	inner := sidebarWidth - m.styles.sidebar.GetHorizontalFrameSize()
	rows := []string{m.styles.title.Render("Lessons"), ""}
	for i, l := range m.session.Catalog().All() {
		marker := "  "
		style := m.styles.item
		if i == m.session.LessonIndex() {
			marker = "▸ "
			style = m.styles.activeItem
		}
		rows = append(rows,
			style.Width(inner).Render(marker+l.Title),
			m.styles.muted.Width(inner).Render("  "+l.Focus),
		)
	}
	return m.styles.sidebar.Width(sidebarWidth - 2).Render(strings.Join(rows, "\n"))
}

func (m *Model) renderHeader(width int) string {
	l := m.session.Lesson()
	rows := []string{
		m.styles.title.Render(l.Title) + " " + m.styles.badge.Render(l.Level) + " " + m.styles.badge.Render(l.Focus),
		m.styles.subtitle.Width(width).Render(l.Subtitle),
	}
	for _, o := range l.Objectives {
		rows = append(rows, m.styles.muted.Width(width).Render("• "+o))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderMetrics() string {
	state := "○ idle"
	if m.session.State() == typing.Active {
		state = "● active"
	}
	copyLabel := m.styles.muted.Render("Copy snippet")
	if m.copied {
		copyLabel = m.styles.copied.Render("Copied!")
	}
	segments := []string{
		m.metric("WPM", fmt.Sprintf("%d", m.result.Speed)),
		m.metric("Accuracy", fmt.Sprintf("%d%%", m.result.Accuracy)),
		m.metric("Errors", fmt.Sprintf("%d", m.result.Errors)),
		m.styles.muted.Render(state),
		copyLabel,
	}
	return strings.Join(segments, "   ")
}

func (m *Model) metric(label, value string) string {
	return m.styles.metricLabel.Render(label+" ") + m.styles.metricValue.Render(value)
}

func (m *Model) renderStatus() string {
	s := m.settings
	parts := []string{
		"Theme " + string(s.Theme),
		fmt.Sprintf("Font %dpx", s.FontSize),
		"Hints " + onOff(s.Hints),
		"Lines " + onOff(s.LineNumbers),
		"Zen " + onOff(s.Zen),
	}
	return m.styles.muted.Render(strings.Join(parts, " · "))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
