package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/pytype/internal/lesson"
	"github.com/verte-zerg/pytype/internal/logging"
	"github.com/verte-zerg/pytype/internal/model"
	"github.com/verte-zerg/pytype/internal/settings"
	"github.com/verte-zerg/pytype/internal/typing"
)

type memKV struct {
	data map[string]string
	puts int
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Put(_ context.Context, key, value string) error {
	m.data[key] = value
	m.puts++
	return nil
}

func newTestModel(t *testing.T) (*Model, *memKV) {
	t.Helper()
	catalog := lesson.NewCatalog([]model.Lesson{
		{Title: "One", Focus: "basics", Snippet: "ab\ncd"},
		{Title: "Two", Focus: "more", Snippet: "xyz"},
	})
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	session := typing.NewSession(catalog, 0, func() time.Time { return now })
	kv := &memKV{data: map[string]string{}}
	return NewModel(session, settings.Defaults(), kv, logging.Discard()), kv
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func typeString(m *Model, s string) {
	for _, r := range s {
		switch r {
		case ' ':
			press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		case '\n':
			press(m, tea.KeyMsg{Type: tea.KeyEnter})
		default:
			press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
}

func TestTypingUpdatesResult(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 100, m.result.Accuracy)

	typeString(m, "ax")
	assert.Equal(t, "ax", m.session.Input())
	assert.Equal(t, typing.Active, m.session.State())
	assert.Equal(t, 1, m.result.Errors)
	assert.Equal(t, 50, m.result.Accuracy)
	assert.Equal(t, []model.CharState{model.Correct, model.Incorrect, model.Pending, model.Pending, model.Pending}, m.result.Classes)

	press(m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "a", m.session.Input())
	assert.Equal(t, 0, m.result.Errors)
}

func TestEnterTypesNewline(t *testing.T) {
	m, _ := newTestModel(t)
	typeString(m, "ab\ncd")
	assert.Equal(t, "ab\ncd", m.session.Input())
	assert.Equal(t, 0, m.result.Errors)
}

func TestTabTypesSpaces(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "    ", m.session.Input())
}

func TestPasteTypesRunes(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab\nc"), Paste: true})
	assert.Equal(t, "ab\nc", m.session.Input())
}

func TestAltRunesAreNotTyped(t *testing.T) {
	m, _ := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true})
	assert.Equal(t, "", m.session.Input())
	assert.Equal(t, typing.Idle, m.session.State())
}

func TestResetClearsSession(t *testing.T) {
	m, _ := newTestModel(t)
	typeString(m, "zz")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, typing.Idle, m.session.State())
	assert.Equal(t, 0, m.result.Errors)
	for _, c := range m.result.Classes {
		assert.Equal(t, model.Pending, c)
	}
}

func TestLessonNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	typeString(m, "a")
	press(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 1, m.session.LessonIndex())
	assert.Equal(t, "", m.session.Input())
	assert.Len(t, m.result.Classes, 3)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, 0, m.session.LessonIndex())
	press(m, tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, 1, m.session.LessonIndex())
}

func TestSettingsChangesArePersisted(t *testing.T) {
	m, kv := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyCtrlT})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlG})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlL})
	press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'='}, Alt: true})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'='}, Alt: true})
	press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}, Alt: true})

	assert.Equal(t, 7, kv.puts)
	want := model.Settings{Hints: false, LineNumbers: false, Zen: true, Theme: model.ThemeMidnight, FontSize: 17}
	assert.Equal(t, want, m.settings)

	stored, err := settings.Load(context.Background(), kv)
	require.NoError(t, err)
	assert.Equal(t, want, stored)
	assert.Equal(t, "", m.session.Input(), "control keys must not be typed")
}

func TestCopySnippetFlow(t *testing.T) {
	m, _ := newTestModel(t)
	var copied string
	m.copyFn = func(s string) error {
		copied = s
		return nil
	}

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, "ab\ncd", copied)

	_, tick := m.Update(msg)
	require.NotNil(t, tick)
	assert.True(t, m.copied)
	assert.Contains(t, m.renderMetrics(), "Copied!")

	m.Update(copyResetMsg{seq: m.copySeq})
	assert.False(t, m.copied)
	assert.Contains(t, m.renderMetrics(), "Copy snippet")
}

func TestCopyResetIgnoresStaleTick(t *testing.T) {
	m, _ := newTestModel(t)
	m.copyFn = func(string) error { return nil }

	first := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	m.Update(first())
	staleSeq := m.copySeq

	second := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	m.Update(second())
	m.Update(copyResetMsg{seq: staleSeq})
	assert.True(t, m.copied, "an older reset must not clear a newer label")
}

func TestCopyFailureKeepsLabel(t *testing.T) {
	m, _ := newTestModel(t)
	m.copyFn = func(string) error { return errors.New("no clipboard") }

	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlY})
	_, next := m.Update(cmd())
	assert.Nil(t, next)
	assert.False(t, m.copied)
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)
	cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewLayout(t *testing.T) {
	m, _ := newTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	out := m.View()
	for _, want := range []string{"Lessons", "One", "Two", "WPM", "Accuracy", "Errors", "Theme aurora", "Font 16px"} {
		assert.True(t, strings.Contains(out, want), "missing %q in view:\n%s", want, out)
	}

	press(m, tea.KeyMsg{Type: tea.KeyCtrlE})
	zen := m.View()
	assert.False(t, strings.Contains(zen, "Lessons"), "zen mode hides the sidebar")
	assert.True(t, strings.Contains(zen, "Zen on"))
}

func TestViewBeforeWindowSize(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.View()
	assert.True(t, strings.Contains(out, "a"))
	assert.False(t, strings.Contains(out, "Lessons"))
}
