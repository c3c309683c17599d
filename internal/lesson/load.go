package lesson

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/pytype/internal/model"
)

const tabWidth = 4

type lessonFile struct {
	Title      string   `toml:"title"`
	Subtitle   string   `toml:"subtitle"`
	Level      string   `toml:"level"`
	Focus      string   `toml:"focus"`
	Objectives []string `toml:"objectives"`
	Snippet    string   `toml:"snippet"`
}

// LoadDir reads every *.toml lesson in dir, ordered by file name.
// A missing directory yields no lessons.
func LoadDir(dir string) ([]model.Lesson, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read lessons directory: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	lessons := make([]model.Lesson, 0, len(names))
	for _, name := range names {
		l, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		lessons = append(lessons, l)
	}
	return lessons, nil
}

// LoadFile decodes a single lesson file.
func LoadFile(path string) (model.Lesson, error) {
	var f lessonFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return model.Lesson{}, fmt.Errorf("failed to decode lesson %s: %w", path, err)
	}
	if strings.TrimSpace(f.Title) == "" {
		return model.Lesson{}, fmt.Errorf("lesson %s: title is required", path)
	}
	snippet := normalizeSnippet(f.Snippet)
	if snippet == "" {
		return model.Lesson{}, fmt.Errorf("lesson %s: snippet is required", path)
	}
	return model.Lesson{
		Title:      f.Title,
		Subtitle:   f.Subtitle,
		Level:      f.Level,
		Focus:      f.Focus,
		Objectives: append([]string(nil), f.Objectives...),
		Snippet:    snippet,
	}, nil
}

// normalizeSnippet makes every rune typeable: tabs become spaces, CRLF becomes
// LF and trailing newlines are dropped.
func normalizeSnippet(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
	return strings.TrimRight(s, "\n")
}
