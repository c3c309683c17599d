// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/pytype/internal/model"
	"github.com/verte-zerg/pytype/internal/settings"
	"github.com/verte-zerg/pytype/internal/typing"
)

const (
	copyLabelDuration = 2 * time.Second
	tabSpaces         = 4
)

type copiedMsg struct {
	seq int
	err error
}

type copyResetMsg struct {
	seq int
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	session  *typing.Session
	settings model.Settings
	kv       settings.KV
	logger   *slog.Logger
	copyFn   func(string) error

	keys   keyMap
	help   help.Model
	styles styles

	width  int
	height int

	result  model.Result
	copied  bool
	copySeq int
}

// NewModel constructs a typing TUI model. Settings changes are written to kv
// as they happen.
func NewModel(session *typing.Session, s model.Settings, kv settings.KV, logger *slog.Logger) *Model {
	m := &Model{
		session:  session,
		settings: s,
		kv:       kv,
		logger:   logger,
		copyFn:   clipboard.WriteAll,
		keys:     defaultKeyMap(),
		help:     help.New(),
		styles:   newStyles(s.Theme),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("failed to copy snippet", "err", msg.err)
			return m, nil
		}
		if msg.seq != m.copySeq {
			return m, nil
		}
		m.copied = true
		seq := msg.seq
		return m, tea.Tick(copyLabelDuration, func(time.Time) tea.Msg {
			return copyResetMsg{seq: seq}
		})
	case copyResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
	case key.Matches(msg, m.keys.Next):
		m.session.NextLesson()
		m.logger.Debug("lesson selected", "index", m.session.LessonIndex(), "title", m.session.Lesson().Title)
	case key.Matches(msg, m.keys.Prev):
		m.session.PrevLesson()
		m.logger.Debug("lesson selected", "index", m.session.LessonIndex(), "title", m.session.Lesson().Title)
	case key.Matches(msg, m.keys.Copy):
		m.copySeq++
		return m, m.copySnippet(m.copySeq)
	case key.Matches(msg, m.keys.Theme):
		m.applySettings(settings.CycleTheme(m.settings))
	case key.Matches(msg, m.keys.Hints):
		m.applySettings(settings.ToggleHints(m.settings))
	case key.Matches(msg, m.keys.Lines):
		m.applySettings(settings.ToggleLineNumbers(m.settings))
	case key.Matches(msg, m.keys.Zen):
		m.applySettings(settings.ToggleZen(m.settings))
	case key.Matches(msg, m.keys.FontUp):
		m.applySettings(settings.AdjustFontSize(m.settings, 1))
	case key.Matches(msg, m.keys.FontDown):
		m.applySettings(settings.AdjustFontSize(m.settings, -1))
	default:
		m.handleTyping(msg)
	}
	m.refresh()
	return m, nil
}

func (m *Model) handleTyping(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.session.Backspace()
	case tea.KeySpace:
		m.session.Type(' ')
	case tea.KeyEnter:
		m.session.Type('\n')
	case tea.KeyTab:
		for i := 0; i < tabSpaces; i++ {
			m.session.Type(' ')
		}
	case tea.KeyRunes:
		if msg.Alt {
			return
		}
		m.session.Type(msg.Runes...)
	}
}

// refresh recomputes the view model from the session.
func (m *Model) refresh() {
	m.result = m.session.Result()
}

func (m *Model) applySettings(s model.Settings) {
	m.settings = s
	m.styles = newStyles(s.Theme)
	if err := settings.Save(context.Background(), m.kv, s); err != nil {
		m.logger.Warn("failed to save settings", "err", err)
		return
	}
	m.logger.Debug("settings saved", "theme", s.Theme, "fontSize", s.FontSize,
		"hints", s.Hints, "lineNumbers", s.LineNumbers, "zen", s.Zen)
}

// copySnippet writes the active snippet to the clipboard off the update loop.
func (m *Model) copySnippet(seq int) tea.Cmd {
	snippet := m.session.Snippet()
	copyFn := m.copyFn
	return func() tea.Msg {
		return copiedMsg{seq: seq, err: copyFn(snippet)}
	}
}
