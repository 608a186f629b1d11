package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DefaultLocalUser   = "John Doe"
	DefaultStartScreen = "menu"
	DefaultLogPath     = "/tmp/stencil-debug.log"
)

// Screens lists the screens that can be opened on launch.
var Screens = []string{
	"menu",
	"onboarding",
	"login",
	"signup",
	"chats",
	"settings",
	"plans",
	"feedback",
}

// Config holds launch settings. None of it is user data; the app never
// writes anything back while running.
type Config struct {
	LocalUser   string `yaml:"local_user"`
	StartScreen string `yaml:"start_screen"`
	// Seed makes mock chats reproducible. Zero seeds from the clock.
	Seed    uint64 `yaml:"seed,omitempty"`
	LogPath string `yaml:"log_path,omitempty"`
}

func Default() Config {
	return Config{
		LocalUser:   DefaultLocalUser,
		StartScreen: DefaultStartScreen,
		LogPath:     DefaultLogPath,
	}
}

// GetConfigDir returns the path to the config directory (~/.stencil).
func GetConfigDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".stencil")
}

// DefaultPath returns ~/.stencil/config.yml.
func DefaultPath() string {
	return filepath.Join(GetConfigDir(), "config.yml")
}

// Load reads the YAML file at path, then applies a .env file from the
// working directory and STENCIL_* environment variables on top. A missing
// config file or .env file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env: %w", err)
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("STENCIL_LOCAL_USER"); ok {
		c.LocalUser = v
	}
	if v, ok := os.LookupEnv("STENCIL_START_SCREEN"); ok {
		c.StartScreen = v
	}
	if v, ok := os.LookupEnv("STENCIL_LOG_PATH"); ok {
		c.LogPath = v
	}
	if v, ok := os.LookupEnv("STENCIL_SEED"); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid STENCIL_SEED %q: %w", v, err)
		}
		c.Seed = seed
	}
	return nil
}

func (c *Config) fillDefaults() {
	c.LocalUser = strings.TrimSpace(c.LocalUser)
	if c.LocalUser == "" {
		c.LocalUser = DefaultLocalUser
	}
	if c.StartScreen == "" {
		c.StartScreen = DefaultStartScreen
	}
	if c.LogPath == "" {
		c.LogPath = DefaultLogPath
	}
}

// Validate checks that the start screen exists.
func (c Config) Validate() error {
	if !slices.Contains(Screens, c.StartScreen) {
		return fmt.Errorf("unknown start screen %q (available: %s)", c.StartScreen, strings.Join(Screens, ", "))
	}
	return nil
}

// Save writes the config as YAML, creating the parent directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
