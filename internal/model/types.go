// Package model defines shared data structures.
package model

// Config defines practice settings resolved from flags and the config file.
type Config struct {
	Lesson     int
	LessonsDir string
	LogLevel   string
}

// Lesson is a single practice unit. Lessons are never mutated after load.
type Lesson struct {
	Title      string
	Subtitle   string
	Level      string
	Focus      string
	Objectives []string
	Snippet    string
}

// CharState classifies one reference rune against the typed input.
type CharState int

const (
	Pending CharState = iota
	Correct
	Incorrect
)

func (s CharState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// Result is the view model produced for every input event.
type Result struct {
	Classes  []CharState
	Errors   int
	Typed    int
	Speed    int
	Accuracy int
}

// Theme names a colour palette.
type Theme string

const (
	ThemeAurora   Theme = "aurora"
	ThemeMidnight Theme = "midnight"
	ThemeSunrise  Theme = "sunrise"
)

// Themes lists the palettes in cycle order.
func Themes() []Theme {
	return []Theme{ThemeAurora, ThemeMidnight, ThemeSunrise}
}

// Valid reports whether t names a known palette.
func (t Theme) Valid() bool {
	for _, known := range Themes() {
		if t == known {
			return true
		}
	}
	return false
}

// Settings holds user display preferences.
type Settings struct {
	Hints       bool
	LineNumbers bool
	Zen         bool
	Theme       Theme
	FontSize    int
}
