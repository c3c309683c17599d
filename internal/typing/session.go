package typing

import (
	"time"

	"github.com/verte-zerg/pytype/internal/lesson"
	"github.com/verte-zerg/pytype/internal/model"
)

// State is the session lifecycle state.
type State int

const (
	// Idle means no keystroke since the last reset.
	Idle State = iota
	// Active means the timer is running.
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Session tracks practice on the active lesson. It is not safe for concurrent use.
type Session struct {
	catalog     *lesson.Catalog
	lessonIndex int
	reference   []rune
	input       []rune
	startedAt   time.Time
	started     bool
	errors      int
	now         func() time.Time
}

// NewSession starts an idle session on lesson index. Out-of-range indexes
// select the first lesson. A nil clock uses time.Now.
func NewSession(catalog *lesson.Catalog, index int, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	s := &Session{catalog: catalog, now: now}
	s.SelectLesson(index)
	return s
}

// Type appends runes to the input buffer.
func (s *Session) Type(runes ...rune) {
	if len(runes) == 0 {
		return
	}
	s.start()
	s.input = append(s.input, runes...)
	s.recount()
}

// Backspace removes the last typed rune.
func (s *Session) Backspace() {
	if len(s.input) == 0 {
		return
	}
	s.start()
	s.input = s.input[:len(s.input)-1]
	s.recount()
}

// SetInput replaces the whole input buffer.
func (s *Session) SetInput(text string) {
	if text == string(s.input) {
		return
	}
	s.start()
	s.input = []rune(text)
	s.recount()
}

// Reset returns to Idle on the current lesson.
func (s *Session) Reset() {
	s.input = nil
	s.started = false
	s.startedAt = time.Time{}
	s.errors = 0
	if l, ok := s.catalog.Get(s.lessonIndex); ok {
		s.reference = []rune(l.Snippet)
	} else {
		s.reference = nil
	}
}

// SelectLesson switches to lesson i and resets.
func (s *Session) SelectLesson(i int) {
	if i < 0 || i >= s.catalog.Len() {
		i = 0
	}
	s.lessonIndex = i
	s.Reset()
}

// NextLesson switches to the following lesson, wrapping around.
func (s *Session) NextLesson() {
	s.SelectLesson(s.catalog.Next(s.lessonIndex))
}

// PrevLesson switches to the preceding lesson, wrapping around.
func (s *Session) PrevLesson() {
	s.SelectLesson(s.catalog.Prev(s.lessonIndex))
}

// State reports whether the timer is running.
func (s *Session) State() State {
	if s.started {
		return Active
	}
	return Idle
}

// StartedAt returns the first keystroke time, if any.
func (s *Session) StartedAt() (time.Time, bool) {
	return s.startedAt, s.started
}

// LessonIndex returns the active lesson index.
func (s *Session) LessonIndex() int {
	return s.lessonIndex
}

// Lesson returns the active lesson.
func (s *Session) Lesson() model.Lesson {
	l, _ := s.catalog.Get(s.lessonIndex)
	return l
}

// Catalog returns the lessons the session navigates.
func (s *Session) Catalog() *lesson.Catalog {
	return s.catalog
}

// Snippet returns the reference text, as copied to the clipboard.
func (s *Session) Snippet() string {
	return string(s.reference)
}

// Input returns the typed text.
func (s *Session) Input() string {
	return string(s.input)
}

// ErrorCount returns the mismatches in the current buffer.
func (s *Session) ErrorCount() int {
	return s.errors
}

// Result evaluates the buffer at the current clock time.
func (s *Session) Result() model.Result {
	var startedAt *time.Time
	if s.started {
		t := s.startedAt
		startedAt = &t
	}
	return evaluate(s.reference, s.input, startedAt, s.now())
}

func (s *Session) start() {
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.now()
}

func (s *Session) recount() {
	_, s.errors = Classify(s.reference, s.input)
}
