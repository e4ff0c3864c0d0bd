// Package main provides the CLI entrypoint for ddtrain.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/ddtrain/internal/config"
	"github.com/verte-zerg/ddtrain/internal/generator"
	"github.com/verte-zerg/ddtrain/internal/model"
	"github.com/verte-zerg/ddtrain/internal/quiz"
	"github.com/verte-zerg/ddtrain/internal/reference"
	"github.com/verte-zerg/ddtrain/internal/tui"
)

var (
	quizSeed  int64
	quizNames bool
	quizTUI   bool

	anchorsYear int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ddtrain",
		Short:         "Doomsday rule day-of-week trainer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().Int64Var(&quizSeed, "seed", 0, "seed for the date sampler (default: random)")
	rootCmd.Flags().BoolVar(&quizNames, "names", false, "show weekday names in feedback")
	rootCmd.Flags().BoolVar(&quizTUI, "tui", false, "run the interactive full-screen interface")

	rootCmd.AddCommand(newAnchorsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg.Quiz)

	gen := generator.New()
	if cfg.HasSeed {
		gen = generator.NewWithSeed(cfg.Seed)
	}

	if cfg.TUI {
		return runTUI(cmd.OutOrStdout(), gen, cfg)
	}

	console := quiz.NewLineConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	if shouldUseColor(cmd.OutOrStdout()) {
		console.SetHighlight(quiz.Highlight)
	}
	if _, err := quiz.New(console, gen, cfg.WeekdayNames).RunSession(quiz.DefaultRounds); err != nil {
		return fmt.Errorf("quiz failed: %w", err)
	}
	return nil
}

func runTUI(out io.Writer, gen *generator.Generator, cfg model.Config) error {
	var summary model.SessionSummary
	err := tui.Run(func(console quiz.Console) error {
		var err error
		summary, err = quiz.New(console, gen, cfg.WeekdayNames).RunSession(quiz.DefaultRounds)
		return err
	}, tea.WithAltScreen())
	if errors.Is(err, tui.ErrAborted) {
		logErrln("quiz aborted")
		return nil
	}
	if err != nil {
		return fmt.Errorf("quiz failed: %w", err)
	}
	if _, err := fmt.Fprintln(out, quiz.FormatSummary(summary)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func resolveConfig(cmd *cobra.Command, fileCfg config.QuizConfig) model.Config {
	applyInt64Config(cmd, "seed", &quizSeed, fileCfg.Seed)
	applyBoolConfig(cmd, "names", &quizNames, fileCfg.WeekdayNames)
	applyBoolConfig(cmd, "tui", &quizTUI, fileCfg.TUI)
	return model.Config{
		Seed:         quizSeed,
		HasSeed:      cmd.Flags().Changed("seed") || fileCfg.Seed != nil,
		WeekdayNames: quizNames,
		TUI:          quizTUI,
	}
}

func newAnchorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchors",
		Short: "Show the doomsday anchor dates of a year",
		Args:  cobra.NoArgs,
		RunE:  runAnchorsCmd,
	}
	cmd.Flags().IntVar(&anchorsYear, "year", 0, "year to show (default: current year)")
	return cmd
}

func runAnchorsCmd(cmd *cobra.Command, _ []string) error {
	year := anchorsYear
	if !cmd.Flags().Changed("year") {
		year = time.Now().Year()
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("--year must be between 1 and 9999")
	}
	if err := reference.RenderAnchors(cmd.OutOrStdout(), year); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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
	return nil
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# ddtrain configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# seed = 1234             # Fixed seed for the date sampler
# weekday-names = false   # Show "Tue (2)" instead of "2" in feedback
# tui = false             # Run the full-screen interface
`
}

func shouldUseColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
