package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/halalan-ph/candidate-overview/internal/avatar"
	"github.com/halalan-ph/candidate-overview/internal/config"
	"github.com/halalan-ph/candidate-overview/internal/model"
	"github.com/halalan-ph/candidate-overview/internal/platform"
	"github.com/halalan-ph/candidate-overview/internal/source"
	"github.com/halalan-ph/candidate-overview/internal/ui"
	"github.com/halalan-ph/candidate-overview/internal/viewmodel"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "ph.halalan.candidate-overview"
	AppName = "Candidate Overview"
)

var (
	// Global flags
	verbose  bool
	dataPath string
	timeout  time.Duration

	// Window flags
	watch    bool
	width    int
	height   int
	uiScale  float64
	fontPath string

	// Logger
	logger *zap.Logger
)

// rootCmd opens the overview window
var rootCmd = &cobra.Command{
	Use:     "candidate-overview",
	Short:   "Browse candidates grouped by the position they run for",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logConfig := zap.NewProductionConfig()
		if verbose {
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = logConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

// listCmd prints the ordered groups without opening a window
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print candidates grouped and ordered as the overview shows them",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := openSource(dataPath)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		candidates, err := src.Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", src.Path(), err)
		}
		return printGroups(cmd.OutOrStdout(), viewmodel.BuildOrderedGroups(candidates))
	},
}

// importCmd copies a YAML or JSON candidate file into a SQLite database,
// replacing any candidates already stored there
var importCmd = &cobra.Command{
	Use:   "import <candidates.yaml> <candidates.db>",
	Short: "Import a candidate file into a SQLite database",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		candidates, err := source.NewFileSource(args[0]).Load(ctx)
		if err != nil {
			return err
		}

		db, err := source.OpenDB(args[1])
		if err != nil {
			return err
		}
		defer db.Close()

		if err := source.ReplaceCandidates(ctx, db, candidates); err != nil {
			return err
		}
		logger.Info("Imported candidates",
			zap.String("from", args[0]),
			zap.String("to", args[1]),
			zap.Int("count", len(candidates)))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Candidate file (.yaml, .json, .db); default from settings")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Load timeout")

	rootCmd.Flags().BoolVar(&watch, "watch", config.DefaultWatchData, "Reload when the data file changes")
	rootCmd.Flags().IntVar(&width, "width", 0, "Window width (default from settings)")
	rootCmd.Flags().IntVar(&height, "height", 0, "Window height (default from settings)")
	rootCmd.Flags().Float64Var(&uiScale, "scale", 0, "Interface scale (default from settings)")
	rootCmd.Flags().StringVar(&fontPath, "font", "", "TrueType or OpenType font file")

	rootCmd.AddCommand(listCmd, importCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// runWindow builds the application and blocks until the window closes
func runWindow(cmd *cobra.Command, args []string) error {
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Flags given on the command line are remembered for the next run
	flags := cmd.Flags()
	if dataPath != "" {
		settings.SetDataPath(dataPath)
	}
	if flags.Changed("watch") {
		settings.SetWatchData(watch)
	}
	if flags.Changed("scale") {
		settings.SetUIScale(uiScale)
	}
	if flags.Changed("font") {
		settings.SetFontPath(fontPath)
	}

	path := settings.GetDataPath()
	if dir, err := platform.GetDataDir(); err == nil {
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			logger.Warn("Failed to create data directory", zap.String("dir", dir), zap.Error(err))
		}
	}

	src, err := openSource(path)
	if err != nil {
		return err
	}

	th := ui.NewOverviewTheme(settings.GetFontPath(), logger)
	th.SetScale(float32(settings.GetUIScale()))
	myApp.Settings().SetTheme(th)

	size := settings.GetWindowSize()
	if width > 0 {
		size.Width = float32(width)
	}
	if height > 0 {
		size.Height = float32(height)
	}

	myWindow := myApp.NewWindow(AppName)
	if icon, err := ui.LoadLogoResource(); err == nil {
		myWindow.SetIcon(icon)
	}
	myWindow.Resize(size)

	resolver := avatar.NewResolver(avatar.WithLogger(logger.Named("avatar")))
	vm := viewmodel.New(viewmodel.DefaultConfig())
	overview := ui.NewOverviewUI(myWindow, settings, src, vm, resolver, th, logger.Named("ui"))

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	loadCtx, loadCancel := context.WithTimeout(ctx, timeout)
	if err := overview.Reload(loadCtx); err != nil {
		logger.Warn("Starting with an empty overview", zap.String("data", path), zap.Error(err))
	}
	loadCancel()

	if err := overview.StartWatching(ctx); err != nil {
		logger.Warn("Live reload disabled", zap.Error(err))
	}

	myWindow.SetOnClosed(overview.Close)

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(myApp.Quit)
		case <-done:
		}
	}()

	logger.Info("Starting", zap.String("version", version), zap.String("data", path))
	myWindow.ShowAndRun()
	close(done)
	return nil
}

func openSource(path string) (source.Source, error) {
	if path == "" {
		defaultPath, err := platform.GetDefaultDataFile()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}
	src, err := source.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open candidate source: %w", err)
	}
	return src, nil
}

func printGroups(w io.Writer, groups []model.PositionGroup) error {
	for i, group := range groups {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s (%d)\n", group.Position, group.Len()); err != nil {
			return err
		}
		for _, c := range group.Members {
			if _, err := fmt.Fprintf(w, "  %s%s%s\n", c.DisplayName(), ui.MiddleDotSeparator, c.DisplayParty()); err != nil {
				return err
			}
		}
	}
	return nil
}
