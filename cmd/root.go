package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/txdash/internal/app"
	"github.com/zjrosen/txdash/internal/cachemanager"
	"github.com/zjrosen/txdash/internal/config"
	"github.com/zjrosen/txdash/internal/log"
	"github.com/zjrosen/txdash/internal/tracing"
	"github.com/zjrosen/txdash/internal/txsource"
	"github.com/zjrosen/txdash/internal/ui/styles"
	"github.com/zjrosen/txdash/internal/vtable"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the view.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory.
const localConfigPath = ".txdash/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "txdash",
	Short:   "A terminal dashboard for transactions",
	Long:    `A terminal analytics dashboard with KPI cards, charts and a virtualized transactions table.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/txdash/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging and the log overlay (ctrl+x)")
	rootCmd.Flags().StringP("data", "f", "",
		"path to a .json or SQLite transactions file")
	rootCmd.Flags().StringP("section", "s", "",
		"section shown on startup")
	rootCmd.Flags().Bool("no-auto-reload", false,
		"do not reload when the data file changes")

	// Bind flags to viper
	_ = viper.BindPFlag("data.path", rootCmd.Flags().Lookup("data"))
	_ = viper.BindPFlag("ui.section", rootCmd.Flags().Lookup("section"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("data.auto_reload", defaults.Data.AutoReload)
	viper.SetDefault("data.auto_reload_debounce", defaults.Data.AutoReloadDebounce)
	viper.SetDefault("data.cache_ttl", defaults.Data.CacheTTL)
	viper.SetDefault("table.buffer_rows", defaults.Table.BufferRows)
	viper.SetDefault("table.frame_interval", defaults.Table.FrameInterval)
	viper.SetDefault("ui.section", defaults.UI.Section)
	viper.SetDefault("ui.show_sidebar", defaults.UI.ShowSidebar)
	viper.SetDefault("ui.markdown_style", defaults.UI.MarkdownStyle)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .txdash/config.yaml (current directory)
		// 2. ~/.config/txdash/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "txdash"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .txdash/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// debugEnabled reports whether --debug or TXDASH_DEBUG asks for logging.
func debugEnabled() bool {
	return debugFlag || os.Getenv("TXDASH_DEBUG") != ""
}

// initLogging starts the file logger in debug mode. The returned cleanup is
// never nil.
func initLogging(runID string) (func(), error) {
	if !debugEnabled() {
		return func() {}, nil
	}
	logPath := os.Getenv("TXDASH_LOG")
	if logPath == "" {
		logPath = "debug.log"
	}
	cleanup, err := log.InitWithTeaLog(logPath, "txdash")
	if err != nil {
		return nil, fmt.Errorf("initializing logging: %w", err)
	}
	log.SetRunID(runID)
	log.Info(log.CatConfig, "txdash starting", "version", version, "debug", true, "logPath", logPath)
	return cleanup, nil
}

// initTracing installs the trace provider. The returned shutdown is never
// nil.
func initTracing(runID string) (func(), error) {
	tc := cfg.Tracing
	if tc.Enabled && tc.Exporter == "file" && tc.FilePath == "" {
		tc.FilePath = config.DefaultTracesFilePath()
	}
	provider, err := tracing.NewProvider(tc, tracing.Options{RunID: runID})
	if err != nil {
		return nil, fmt.Errorf("initializing tracing: %w", err)
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}, nil
}

// applyTheme applies presets and overrides. Without a persisted mode the
// background detected in init stays in effect.
func applyTheme(theme config.ThemeConfig) error {
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Preset: theme.Preset,
		Mode:   theme.Mode,
		Colors: theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}
	log.Debug(log.CatTheme, "Theme applied", "preset", theme.Preset, "mode", styles.Mode())
	return nil
}

func runApp(cmd *cobra.Command, _ []string) error {
	runID := uuid.NewString()

	cleanupLog, err := initLogging(runID)
	if err != nil {
		return err
	}
	defer cleanupLog()

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	shutdownTracing, err := initTracing(runID)
	if err != nil {
		return err
	}
	defer shutdownTracing()

	if err := applyTheme(cfg.Theme); err != nil {
		return err
	}

	// Handle --no-auto-reload flag (negated logic)
	if noAutoReload, _ := cmd.Flags().GetBool("no-auto-reload"); noAutoReload {
		cfg.Data.AutoReload = false
	}

	source, err := txsource.Open(cfg.Data.Path)
	if err != nil {
		return err
	}

	// Store the config file path for saving the theme mode
	configFilePath := viper.ConfigFileUsed()
	if configFilePath == "" {
		// No config file was loaded, default to .txdash/config.yaml
		configFilePath = localConfigPath
	}

	rowCache := cachemanager.NewInMemoryCacheManager[string, []vtable.Row]("rows", cfg.Data.CacheTTL, 10*time.Minute)

	zone.NewGlobal()
	model := app.NewWithConfig(cfg, source, rowCache, configFilePath, debugEnabled())
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
