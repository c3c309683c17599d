package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/pytype/internal/model"
)

const (
	newlineMarker    = '↵'
	wrongSpaceMarker = '•'
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildLines styles every reference rune and groups them by source line.
// A newline rune ends its line and is only drawn as a marker when it is
// mistyped or, with hints on, under the cursor.
func buildLines(reference []rune, classes []model.CharState, cursorIndex int, st styles, hints bool) [][]styledRune {
	cursorLine := lineOf(reference, cursorIndex)
	lines := [][]styledRune{{}}
	line := 0
	for i, target := range reference {
		state := model.Pending
		if i < len(classes) {
			state = classes[i]
		}
		atCursor := hints && i == cursorIndex

		if target == '\n' {
			switch {
			case state == model.Incorrect:
				lines[line] = append(lines[line], newStyledRune(newlineMarker, st.incorrect, false))
			case atCursor:
				lines[line] = append(lines[line], newStyledRune(newlineMarker, st.pending.Underline(true), false))
			}
			lines = append(lines, []styledRune{})
			line++
			continue
		}

		displayed := target
		style := st.pending
		switch state {
		case model.Correct:
			style = st.correct
		case model.Incorrect:
			style = st.incorrect
			if target == ' ' {
				displayed = wrongSpaceMarker
			}
		default:
			if hints && line == cursorLine && target != ' ' {
				style = st.currentLine
			}
		}
		if atCursor {
			style = style.Underline(true)
		}
		lines[line] = append(lines[line], newStyledRune(displayed, style, target == ' '))
	}
	return lines
}

func newStyledRune(r rune, style lipgloss.Style, isSpace bool) styledRune {
	return styledRune{
		s:       style.Render(string(r)),
		width:   runewidth.RuneWidth(r),
		isSpace: isSpace,
	}
}

// lineOf returns the 0-based line of index, or -1 when index is outside reference.
func lineOf(reference []rune, index int) int {
	if index < 0 || index >= len(reference) {
		return -1
	}
	line := 0
	for _, r := range reference[:index] {
		if r == '\n' {
			line++
		}
	}
	return line
}

// renderCode lays out styled lines with an optional line number gutter,
// wrapping each source line to width.
func renderCode(lines [][]styledRune, width int, lineNumbers bool, st styles) string {
	digits := len(fmt.Sprint(len(lines)))
	if digits < 2 {
		digits = 2
	}
	gutterWidth := 0
	if lineNumbers {
		gutterWidth = digits + 1
	}
	textWidth := width - gutterWidth
	if width <= 0 {
		textWidth = 0
	} else if textWidth < 1 {
		textWidth = 1
	}

	rows := make([]string, 0, len(lines))
	for n, line := range lines {
		wrapped := strings.Split(wrapStyledRunes(line, textWidth), "\n")
		for i, row := range wrapped {
			if lineNumbers {
				label := strings.Repeat(" ", digits)
				if i == 0 {
					label = fmt.Sprintf("%*d", digits, n+1)
				}
				row = st.gutter.Render(label) + " " + row
			}
			rows = append(rows, row)
		}
	}
	return strings.Join(rows, "\n")
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
