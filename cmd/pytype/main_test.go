package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/pytype/internal/lesson"
)

func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestLessonsListsBuiltins(t *testing.T) {
	isolateXDG(t)
	out, _, err := execute(t, "", "lessons")
	require.NoError(t, err)
	for _, l := range lesson.Builtin() {
		assert.Contains(t, out, l.Title)
	}
}

func TestLessonsShowsOne(t *testing.T) {
	isolateXDG(t)
	out, _, err := execute(t, "", "lessons", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Async Execution Patterns")
	assert.Contains(t, out, "import asyncio")
}

func TestLessonsRejectsOutOfRange(t *testing.T) {
	isolateXDG(t)
	_, _, err := execute(t, "", "lessons", "9")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 1 and 4")

	_, _, err = execute(t, "", "lessons", "two")
	require.Error(t, err)
}

func TestLessonsIncludesExtraDir(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "extra")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := "title = \"Generators\"\nfocus = \"Iteration\"\nsnippet = \"\"\"\nyield x\n\"\"\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gen.toml"), []byte(body), 0o644))

	out, _, err := execute(t, "", "lessons", "--lessons-dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Generators")
}

func TestScorePerfectAttemptFromStdin(t *testing.T) {
	isolateXDG(t)
	snippet := lesson.Builtin()[0].Snippet
	out, _, err := execute(t, snippet+"\n", "score", "--lesson", "1", "--elapsed", "1m")
	require.NoError(t, err)
	assert.Contains(t, out, "Accuracy: 100%")
	assert.Contains(t, out, "Errors: 0")
	assert.NotContains(t, out, "Mismatches")
}

func TestScoreReportsMismatches(t *testing.T) {
	isolateXDG(t)
	out, _, err := execute(t, "frum", "score")
	require.NoError(t, err)
	assert.Contains(t, out, "Speed: 0 WPM")
	assert.Contains(t, out, "Errors: 1")
	assert.Contains(t, out, "Mismatches")
}

func TestScoreReadsFile(t *testing.T) {
	root := isolateXDG(t)
	path := filepath.Join(root, "typed.txt")
	require.NoError(t, os.WriteFile(path, []byte("import\r\n"), 0o644))

	out, _, err := execute(t, "", "score", "--lesson", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Errors: 0")
}

func TestScoreRejectsNegativeElapsed(t *testing.T) {
	isolateXDG(t)
	_, _, err := execute(t, "x", "score", "--elapsed", "-1s")
	require.Error(t, err)
}

func TestCopyUsesSelectedLesson(t *testing.T) {
	isolateXDG(t)
	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	_, errOut, err := execute(t, "", "copy", "--lesson", "3")
	require.NoError(t, err)
	assert.Equal(t, lesson.Builtin()[2].Snippet, copied)
	assert.Contains(t, errOut, "Copied lesson 3")
}

func TestCopyFailure(t *testing.T) {
	isolateXDG(t)
	orig := copyToClipboard
	copyToClipboard = func(string) error { return errors.New("no clipboard") }
	t.Cleanup(func() { copyToClipboard = orig })

	_, _, err := execute(t, "", "copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no clipboard")
}

func TestConfigFileSelectsLesson(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "pytype")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[practice]\nlesson = 4\n"), 0o644))

	var copied string
	orig := copyToClipboard
	copyToClipboard = func(s string) error {
		copied = s
		return nil
	}
	t.Cleanup(func() { copyToClipboard = orig })

	_, _, err := execute(t, "", "copy")
	require.NoError(t, err)
	assert.Equal(t, lesson.Builtin()[3].Snippet, copied)

	_, _, err = execute(t, "", "copy", "--lesson", "1")
	require.NoError(t, err)
	assert.Equal(t, lesson.Builtin()[0].Snippet, copied, "flags override config")
}

func TestConfigFileRejectsUnknownKeys(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", "pytype")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[practice]\nwords = 10\n"), 0o644))

	_, _, err := execute(t, "", "lessons")
	require.Error(t, err)
}

func TestSettingsSetShowReset(t *testing.T) {
	isolateXDG(t)

	out, _, err := execute(t, "", "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "theme=aurora")
	assert.NotContains(t, out, "updated=")

	out, _, err = execute(t, "", "settings", "set", "theme", "sunrise")
	require.NoError(t, err)
	assert.Contains(t, out, "theme=sunrise")

	out, _, err = execute(t, "", "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "theme=sunrise")
	assert.Contains(t, out, "updated=")

	_, _, err = execute(t, "", "settings", "set", "fontSize", "big")
	require.Error(t, err)

	out, _, err = execute(t, "", "settings", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "theme=aurora")
	assert.Contains(t, out, "fontSize=16")
}

func TestDefaultConfigTemplateMentionsKeys(t *testing.T) {
	isolateXDG(t)
	tpl := defaultConfigTemplate()
	for _, key := range []string{"[practice]", "lesson", "lessons-dir", "[log]", "level"} {
		assert.Contains(t, tpl, key)
	}
}
