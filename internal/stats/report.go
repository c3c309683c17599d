package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/pytype/internal/model"
)

// Mismatch locates one incorrectly typed reference rune.
type Mismatch struct {
	Line     int
	Column   int
	Expected rune
	Typed    rune
}

// Mismatches lists the incorrect positions of res, with 1-based line and column.
func Mismatches(reference, typed string, res model.Result) []Mismatch {
	refRunes := []rune(reference)
	typedRunes := []rune(typed)
	var out []Mismatch
	line, col := 1, 1
	for i, r := range refRunes {
		if i < len(res.Classes) && res.Classes[i] == model.Incorrect && i < len(typedRunes) {
			out = append(out, Mismatch{Line: line, Column: col, Expected: r, Typed: typedRunes[i]})
		}
		if r == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return out
}

// RenderLessonTable prints an overview of the catalog.
func RenderLessonTable(w io.Writer, lessons []model.Lesson) error {
	if len(lessons) == 0 {
		_, err := fmt.Fprintln(w, "No lessons found.")
		return err
	}
	headers := []string{"#", "Title", "Level", "Focus", "Lines", "Chars"}
	rows := make([][]string, 0, len(lessons))
	for i, l := range lessons {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			l.Title,
			l.Level,
			l.Focus,
			strconv.Itoa(strings.Count(l.Snippet, "\n") + 1),
			strconv.Itoa(utf8.RuneCountInString(l.Snippet)),
		})
	}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 4: true, 5: true}))
}

// RenderLesson prints the header, objectives and snippet of one lesson.
func RenderLesson(w io.Writer, number int, l model.Lesson) error {
	lines := []string{
		fmt.Sprintf("%d. %s", number, l.Title),
		l.Subtitle,
		fmt.Sprintf("Level: %s · Focus: %s", l.Level, l.Focus),
		"",
		"Objectives:",
	}
	for _, o := range l.Objectives {
		lines = append(lines, "  - "+o)
	}
	lines = append(lines, "", l.Snippet)
	return writeLines(w, lines)
}

// RenderScore prints the metrics of an evaluated attempt and its mismatches.
func RenderScore(w io.Writer, reference, typed string, res model.Result) error {
	total := utf8.RuneCountInString(reference)
	progress := 0
	if total > 0 {
		done := res.Typed
		if done > total {
			done = total
		}
		progress = done * 100 / total
	}
	summary := []string{
		fmt.Sprintf("Speed: %d WPM", res.Speed),
		fmt.Sprintf("Accuracy: %d%%", res.Accuracy),
		fmt.Sprintf("Errors: %d", res.Errors),
		fmt.Sprintf("Typed: %d/%d (%d%%)", res.Typed, total, progress),
	}
	if err := writeLines(w, summary); err != nil {
		return err
	}
	mismatches := Mismatches(reference, typed, res)
	if len(mismatches) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "\nMismatches"); err != nil {
		return err
	}
	rows := make([][]string, 0, len(mismatches))
	for _, m := range mismatches {
		rows = append(rows, []string{
			strconv.Itoa(m.Line),
			strconv.Itoa(m.Column),
			runeLabel(m.Expected),
			runeLabel(m.Typed),
		})
	}
	headers := []string{"Line", "Col", "Expected", "Typed"}
	return writeLines(w, formatTable(headers, rows, map[int]bool{0: true, 1: true}))
}

func runeLabel(r rune) string {
	switch r {
	case ' ':
		return "<space>"
	case '\n':
		return "<newline>"
	case '\t':
		return "<tab>"
	default:
		return string(r)
	}
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
