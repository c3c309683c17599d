package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/pytype/internal/model"
)

// Names lists the settable fields in display order.
var Names = []string{"hints", "lineNumbers", "zen", "theme", "fontSize"}

// ToggleHints flips hint display.
func ToggleHints(s model.Settings) model.Settings {
	s.Hints = !s.Hints
	return s
}

// ToggleLineNumbers flips the line number gutter.
func ToggleLineNumbers(s model.Settings) model.Settings {
	s.LineNumbers = !s.LineNumbers
	return s
}

// ToggleZen flips zen mode.
func ToggleZen(s model.Settings) model.Settings {
	s.Zen = !s.Zen
	return s
}

// CycleTheme moves to the next theme.
func CycleTheme(s model.Settings) model.Settings {
	themes := model.Themes()
	for i, t := range themes {
		if t == s.Theme {
			s.Theme = themes[(i+1)%len(themes)]
			return s
		}
	}
	s.Theme = themes[0]
	return s
}

// AdjustFontSize changes the font size by delta within bounds.
func AdjustFontSize(s model.Settings, delta int) model.Settings {
	s.FontSize = ClampFontSize(s.FontSize + delta)
	return s
}

// Set assigns one named field from its text form.
func Set(s model.Settings, name, value string) (model.Settings, error) {
	value = strings.TrimSpace(value)
	switch strings.ToLower(name) {
	case "hints":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("hints must be true or false")
		}
		s.Hints = v
	case "linenumbers", "line-numbers":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("lineNumbers must be true or false")
		}
		s.LineNumbers = v
	case "zen":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return s, fmt.Errorf("zen must be true or false")
		}
		s.Zen = v
	case "theme":
		theme := model.Theme(strings.ToLower(value))
		if !theme.Valid() {
			return s, fmt.Errorf("unknown theme %q (available: %s)", value, themeList())
		}
		s.Theme = theme
	case "fontsize", "font-size":
		size, err := strconv.Atoi(value)
		if err != nil {
			return s, fmt.Errorf("fontSize must be a number")
		}
		if size < MinFontSize || size > MaxFontSize {
			return s, fmt.Errorf("fontSize must be between %d and %d", MinFontSize, MaxFontSize)
		}
		s.FontSize = size
	default:
		return s, fmt.Errorf("unknown setting %q (available: %s)", name, strings.Join(Names, ", "))
	}
	return s, nil
}

func themeList() string {
	names := make([]string, 0, len(model.Themes()))
	for _, t := range model.Themes() {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}
