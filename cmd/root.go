package cmd

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/stencil/internal/config"
	"github.com/saravenpi/stencil/internal/logger"
	"github.com/saravenpi/stencil/internal/mockdata"
	"github.com/saravenpi/stencil/internal/ui"
	"github.com/spf13/cobra"
)

var (
	debugMode   bool
	quietMode   bool
	configPath  string
	startScreen string
	seed        uint64
	version     = "dev"
)

// SetVersion sets the version reported by --version.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Terminal UI templates for chat, onboarding and subscription screens",
	Long: `Stencil is a set of ready-made terminal screens: onboarding, login, sign up,
chat list, conversation, settings, subscription plans and feedback.

All chat data is generated in memory. Actions such as login or sign up
are placeholders to wire to a real backend.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Only log warnings and errors (overrides --debug)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the config file")
	rootCmd.Flags().StringVarP(&startScreen, "screen", "s", "", "Screen to open on launch (see 'stencil screens')")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for mock chat data (0 uses the clock)")
}

func initLogging() {
	logger.SetLevel(logLevel(debugMode, quietMode))
}

func logLevel(debug, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case debug:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate("stencil {{.Version}}\n")
	return rootCmd.Execute()
}

// loadConfig reads the config file, applying .env and STENCIL_* overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, fmt.Errorf("error loading config: %w", err)
	}
	return cfg, nil
}

func newGenerator(cfg config.Config) *mockdata.Generator {
	opts := []mockdata.Option{mockdata.WithLocalUser(cfg.LocalUser)}
	if cfg.Seed != 0 {
		opts = append(opts, mockdata.WithSeed(cfg.Seed))
	}
	return mockdata.NewGenerator(opts...)
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("screen") {
		cfg.StartScreen = startScreen
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Init(cfg.LogPath); err != nil {
		return err
	}
	defer logger.Close()

	gen := newGenerator(cfg)
	deps := ui.Deps{LocalUser: gen.LocalUser(), Chats: gen}

	screen, err := ui.NewScreen(cfg.StartScreen, deps)
	if err != nil {
		return err
	}

	logger.ComponentLogger("main").Info("starting", "screen", cfg.StartScreen, "seed", cfg.Seed)

	p := tea.NewProgram(screen, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
