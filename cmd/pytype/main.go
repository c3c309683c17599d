// Package main provides the CLI entrypoint for pytype.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/pytype/internal/config"
	"github.com/verte-zerg/pytype/internal/lesson"
	"github.com/verte-zerg/pytype/internal/logging"
	"github.com/verte-zerg/pytype/internal/model"
	"github.com/verte-zerg/pytype/internal/settings"
	"github.com/verte-zerg/pytype/internal/stats"
	"github.com/verte-zerg/pytype/internal/store"
	"github.com/verte-zerg/pytype/internal/tui"
	"github.com/verte-zerg/pytype/internal/typing"
)

const (
	defaultLesson   = 1
	defaultLogLevel = "info"
)

var (
	practiceLesson     int
	practiceLessonsDir string
	logLevel           string
	verbose            bool

	scoreElapsed time.Duration
)

// copyToClipboard is swapped in tests.
var copyToClipboard = clipboard.WriteAll

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pytype",
		Short:         "Code snippet typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.PersistentFlags().IntVar(&practiceLesson, "lesson", defaultLesson, "lesson number to start with (1-based)")
	rootCmd.PersistentFlags().StringVar(&practiceLessonsDir, "lessons-dir", config.DefaultLessonsDir(), "directory with extra lesson TOML files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "shorthand for --log-level debug")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLessonsCmd())
	rootCmd.AddCommand(newCopyCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSettingsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog := openLogger(cfg)
	defer closeLog()

	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	index, err := lessonIndex(cfg.Lesson, catalog)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn("failed to close db", "err", cerr)
		}
	}()

	prefs, err := settings.Load(context.Background(), st)
	if err != nil {
		logger.Warn("using default settings", "err", err)
	}

	session := typing.NewSession(catalog, index, time.Now)
	ui := tui.NewModel(session, prefs, st, logger)
	logger.Info("practice started", "lesson", index+1, "lessons", catalog.Len(), "theme", prefs.Theme)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLessonsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lessons [N]",
		Short: "List lessons or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLessonsCmd,
	}
}

func runLessonsCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog := openLogger(cfg)
	defer closeLog()
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		if err := stats.RenderLessonTable(out, catalog.All()); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("lesson must be a number, got %q", args[0])
	}
	index, err := lessonIndex(number, catalog)
	if err != nil {
		return err
	}
	l, _ := catalog.Get(index)
	if err := stats.RenderLesson(out, number, l); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCopyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy",
		Short: "Copy a lesson snippet to the clipboard",
		Args:  cobra.NoArgs,
		RunE:  runCopyCmd,
	}
}

func runCopyCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog := openLogger(cfg)
	defer closeLog()
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	index, err := lessonIndex(cfg.Lesson, catalog)
	if err != nil {
		return err
	}
	session := typing.NewSession(catalog, index, nil)
	if err := copyToClipboard(session.Snippet()); err != nil {
		logger.Warn("failed to copy snippet", "err", err)
		return fmt.Errorf("failed to copy snippet: %w", err)
	}
	if _, err := fmt.Fprintf(cmd.ErrOrStderr(), "Copied lesson %d: %s\n", index+1, session.Lesson().Title); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [FILE|-]",
		Short: "Score typed text against a lesson",
		Long: "Score typed text against the selected lesson. Text is read from FILE, or from\n" +
			"stdin when FILE is omitted or \"-\". One trailing newline is ignored.",
		Args: cobra.MaximumNArgs(1),
		RunE: runScoreCmd,
	}
	cmd.Flags().DurationVar(&scoreElapsed, "elapsed", 0, "time spent typing (e.g. 45s); 0 reports no speed")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if scoreElapsed < 0 {
		return fmt.Errorf("--elapsed must be >= 0")
	}
	logger, closeLog := openLogger(cfg)
	defer closeLog()
	catalog, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}
	index, err := lessonIndex(cfg.Lesson, catalog)
	if err != nil {
		return err
	}
	typed, err := readTyped(cmd, args)
	if err != nil {
		return err
	}

	now := time.Now()
	var startedAt *time.Time
	if scoreElapsed > 0 {
		start := now.Add(-scoreElapsed)
		startedAt = &start
	}
	l, _ := catalog.Get(index)
	res := typing.Evaluate(l.Snippet, typed, startedAt, now)
	logger.Debug("scored attempt", "lesson", index+1, "typed", res.Typed, "errors", res.Errors)
	if err := stats.RenderScore(cmd.OutOrStdout(), l.Snippet, typed, res); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func readTyped(cmd *cobra.Command, args []string) (string, error) {
	var data []byte
	var err error
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read typed text: %w", err)
		}
	} else {
		in := cmd.InOrStdin()
		if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return "", fmt.Errorf("no input: pass a file or pipe typed text on stdin")
		}
		data, err = io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("failed to read typed text: %w", err)
		}
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimSuffix(text, "\n"), nil
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsShowCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print current settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsShowCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set NAME VALUE",
		Short: "Change one setting (" + strings.Join(settings.Names, ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE:  runSettingsSetCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore default settings",
		Args:  cobra.NoArgs,
		RunE:  runSettingsResetCmd,
	})
	return cmd
}

func runSettingsShowCmd(cmd *cobra.Command, _ []string) error {
	return withSettingsStore(func(ctx context.Context, st *store.Store) error {
		prefs, err := settings.Load(ctx, st)
		if err != nil {
			return err
		}
		if err := printSettings(cmd.OutOrStdout(), prefs); err != nil {
			return err
		}
		updated, ok, err := st.UpdatedAt(ctx, settings.StorageKey)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "updated=%s\n", updated.Local().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	})
}

func runSettingsSetCmd(cmd *cobra.Command, args []string) error {
	return withSettingsStore(func(ctx context.Context, st *store.Store) error {
		prefs, err := settings.Load(ctx, st)
		if err != nil {
			return err
		}
		prefs, err = settings.Set(prefs, args[0], args[1])
		if err != nil {
			return err
		}
		if err := settings.Save(ctx, st, prefs); err != nil {
			return err
		}
		return printSettings(cmd.OutOrStdout(), prefs)
	})
}

func runSettingsResetCmd(cmd *cobra.Command, _ []string) error {
	return withSettingsStore(func(ctx context.Context, st *store.Store) error {
		if err := settings.Reset(ctx, st); err != nil {
			return err
		}
		return printSettings(cmd.OutOrStdout(), settings.Defaults())
	})
}

func withSettingsStore(fn func(context.Context, *store.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(context.Background(), st)
}

func printSettings(w io.Writer, s model.Settings) error {
	lines := []string{
		fmt.Sprintf("hints=%t", s.Hints),
		fmt.Sprintf("lineNumbers=%t", s.LineNumbers),
		fmt.Sprintf("zen=%t", s.Zen),
		fmt.Sprintf("theme=%s", s.Theme),
		fmt.Sprintf("fontSize=%d", s.FontSize),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "lesson", &practiceLesson, fileCfg.Practice.Lesson)
	applyStringConfig(cmd, "lessons-dir", &practiceLessonsDir, fileCfg.Practice.LessonsDir)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

	cfg := model.Config{
		Lesson:     practiceLesson,
		LessonsDir: practiceLessonsDir,
		LogLevel:   logLevel,
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return model.Config{}, fmt.Errorf("--log-level: %w", err)
	}
	return cfg, nil
}

// openLogger falls back to a discarding logger when the log file is unusable.
func openLogger(cfg model.Config) (*slog.Logger, func()) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	logger, closer, err := logging.Open(config.DefaultLogPath(), level)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		return logging.Discard(), func() {}
	}
	return logger, func() { _ = closer.Close() }
}

func loadCatalog(cfg model.Config, logger *slog.Logger) (*lesson.Catalog, error) {
	extra, err := lesson.LoadDir(cfg.LessonsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load lessons: %w", err)
	}
	if len(extra) > 0 {
		logger.Debug("loaded extra lessons", "dir", cfg.LessonsDir, "count", len(extra))
	}
	return lesson.NewCatalog(lesson.Builtin(), extra), nil
}

// lessonIndex converts a 1-based lesson number to a catalog index.
func lessonIndex(number int, catalog *lesson.Catalog) (int, error) {
	if number < 1 || number > catalog.Len() {
		return 0, fmt.Errorf("--lesson must be between 1 and %d", catalog.Len())
	}
	return number - 1, nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# pytype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# lesson = %d             # Lesson number to start with (1-based)
# lessons-dir = %q        # Directory with extra lesson TOML files

[log]
# level = %q           # debug, info, warn or error
`,
		defaultLesson,
		config.DefaultLessonsDir(),
		defaultLogLevel,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
