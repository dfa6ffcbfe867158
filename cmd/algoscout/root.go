package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/csheth/algoscout/internal/catalog"
	"github.com/csheth/algoscout/internal/config"
	"github.com/csheth/algoscout/internal/logging"
	"github.com/csheth/algoscout/internal/nav"
	"github.com/csheth/algoscout/internal/tui"
)

var errNotTerminal = errors.New("stdout is not a terminal; use `algoscout list` or `algoscout show <id>` for plain output")

type rootFlags struct {
	configPath  string
	contentDir  string
	noAltScreen bool
	startView   string
	open        string
	exportPath  string
	logFile     string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "algoscout",
		Short: "Browse C algorithm notes in the terminal",
		Long: `algoscout is a terminal catalog of classic algorithms and data structures
with C implementations, complexity facts and side-by-side comparison.

Run without arguments to open the interactive browser.`,
		Example: `  algoscout
  algoscout --start-view list
  algoscout --open quick-sort
  algoscout list --category sorting
  algoscout compare bubble-sort merge-sort --json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $"+config.EnvPath+" or <config dir>/algoscout/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.contentDir, "content", "", "Directory holding catalog.yaml and content/ (default embedded catalog)")
	cmd.Flags().BoolVar(&flags.noAltScreen, "no-alt-screen", false, "Disable the alternate screen buffer")
	cmd.Flags().StringVar(&flags.startView, "start-view", "", "First screen: home, list, compare")
	cmd.Flags().StringVar(&flags.open, "open", "", "Open the detail screen for this algorithm id")
	cmd.Flags().StringVar(&flags.exportPath, "export", "", "File that comparison exports are appended to")
	cmd.Flags().StringVar(&flags.logFile, "log-file", "", "Write a session log to this file")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newCompareCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// settings loads the config file and lets explicit flags win over it.
func (f *rootFlags) settings() (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if f.contentDir != "" {
		cfg.ContentDir = f.contentDir
	}
	if f.noAltScreen {
		off := false
		cfg.AltScreen = &off
	}
	if f.startView != "" {
		view := nav.View(f.startView)
		if !view.Valid() {
			return config.Config{}, fmt.Errorf("--start-view %q: want home, list, detail or compare", f.startView)
		}
		cfg.StartView = f.startView
	}
	if f.exportPath != "" {
		cfg.ExportPath = f.exportPath
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	return cfg, nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.ContentDir == "" {
		return catalog.Default()
	}
	cat, err := catalog.LoadDir(cfg.ContentDir)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", cfg.ContentDir, err)
	}
	return cat, nil
}

// startScreen resolves where the program opens. --open always means the
// detail screen.
func startScreen(cfg config.Config, open string) (nav.View, string, error) {
	if open != "" {
		return nav.Detail, open, nil
	}
	view := cfg.View()
	if view == nav.Detail {
		return "", "", errors.New("start view detail needs --open <id>")
	}
	return view, "", nil
}

func runTUI(flags *rootFlags) error {
	cfg, err := flags.settings()
	if err != nil {
		return err
	}
	if !isTerminal(os.Stdout) {
		return errNotTerminal
	}

	logger, closer, err := logging.New(logging.Options{File: cfg.Log.File, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	view, id, err := startScreen(cfg, flags.open)
	if err != nil {
		return err
	}

	logger.Info("starting", slog.String("version", version), slog.Int("algorithms", cat.Len()), slog.String("view", string(view)))

	opts := []tea.ProgramOption{}
	if cfg.UseAltScreen() {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(
		tui.New(tui.Config{
			Catalog:        cat,
			Logger:         logger,
			ExportPath:     cfg.ExportPath,
			StartView:      view,
			StartAlgorithm: id,
		}),
		opts...,
	)
	if _, err := program.Run(); err != nil {
		logger.Error("program exited", slog.Any("err", err))
		return fmt.Errorf("program error: %w", err)
	}
	logger.Info("bye")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
