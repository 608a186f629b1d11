package cmd

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saravenpi/stencil/internal/config"
	"gopkg.in/yaml.v3"
)

// run executes the root command with args against a config file in a temp
// directory and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.yml")
}

func TestScreensCommand(t *testing.T) {
	out, err := run(t, "screens", "--config", tempConfig(t))
	if err != nil {
		t.Fatalf("screens failed: %v", err)
	}

	lines := strings.Fields(out)
	if len(lines) != len(config.Screens) {
		t.Fatalf("expected %d screens, got %v", len(config.Screens), lines)
	}
	for i, s := range config.Screens {
		if lines[i] != s {
			t.Errorf("line %d: expected %q, got %q", i, s, lines[i])
		}
	}
}

func decodeMock(t *testing.T, out string) []mockChat {
	t.Helper()
	var chats []mockChat
	if err := yaml.Unmarshal([]byte(out), &chats); err != nil {
		t.Fatalf("mock output is not YAML: %v\n%s", err, out)
	}
	for i := range chats {
		for j := range chats[i].Messages {
			chats[i].Messages[j].Time = ""
		}
	}
	return chats
}

func TestMockCommand_Seeded(t *testing.T) {
	path := tempConfig(t)

	first, err := run(t, "mock", "--seed", "42", "--config", path)
	if err != nil {
		t.Fatalf("mock failed: %v", err)
	}
	second, err := run(t, "mock", "--seed", "42", "--config", path)
	if err != nil {
		t.Fatalf("mock failed: %v", err)
	}

	a, b := decodeMock(t, first), decodeMock(t, second)
	if len(a) != 20 {
		t.Fatalf("expected 20 chats, got %d", len(a))
	}
	for i := range a {
		if a[i].User != b[i].User || len(a[i].Messages) != len(b[i].Messages) {
			t.Fatalf("chat %d differs between runs with the same seed", i)
		}
		unread := 0
		for _, m := range a[i].Messages {
			if !m.Read {
				unread++
			}
		}
		if a[i].Unread != unread {
			t.Errorf("chat %d: unread=%d, counted %d", i, a[i].Unread, unread)
		}
	}
}

func TestMockCommand_LocalUserFromConfig(t *testing.T) {
	path := tempConfig(t)
	cfg := config.Default()
	cfg.LocalUser = "Ann"
	if err := config.Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "mock", "--seed", "7", "--config", path)
	if err != nil {
		t.Fatalf("mock failed: %v", err)
	}

	for _, chat := range decodeMock(t, out) {
		for _, m := range chat.Messages {
			if m.Mine && m.Sender != "Ann" {
				t.Fatalf("expected own messages from Ann, got %q", m.Sender)
			}
		}
	}
}

func TestConfigInit(t *testing.T) {
	path := tempConfig(t)

	if _, err := run(t, "config", "init", "--config", path); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, err := run(t, "config", "init", "--config", path); err == nil {
		t.Error("expected error when config already exists")
	}
	if _, err := run(t, "config", "init", "--force", "--config", path); err != nil {
		t.Errorf("expected --force to overwrite: %v", err)
	}
	forceInit = false
}

func TestConfigShow(t *testing.T) {
	path := tempConfig(t)
	t.Setenv("STENCIL_START_SCREEN", "plans")

	out, err := run(t, "config", "show", "--config", path)
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out, "start_screen: plans") {
		t.Errorf("expected env override in output, got:\n%s", out)
	}
}

func TestConfigShow_InvalidScreen(t *testing.T) {
	path := tempConfig(t)
	if err := os.WriteFile(path, []byte("start_screen: inbox\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "config", "show", "--config", path); err == nil {
		t.Error("expected error for unknown start screen")
	}
}

func TestNewGenerator_UsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.LocalUser = "Ann"
	cfg.Seed = 3

	a := newGenerator(cfg)
	b := newGenerator(cfg)
	if a.LocalUser() != "Ann" {
		t.Errorf("expected local user Ann, got %q", a.LocalUser())
	}
	if a.Chats()[0].UserName != b.Chats()[0].UserName {
		t.Error("expected seeded generators to agree")
	}
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		debug, quiet bool
		want         slog.Level
	}{
		{false, false, slog.LevelInfo},
		{true, false, slog.LevelDebug},
		{false, true, slog.LevelWarn},
		{true, true, slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := logLevel(tt.debug, tt.quiet); got != tt.want {
			t.Errorf("logLevel(debug=%v, quiet=%v) = %v, want %v", tt.debug, tt.quiet, got, tt.want)
		}
	}
}

func TestQuietFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("quiet")
	if flag == nil {
		t.Fatal("--quiet flag not found")
	}
	if flag.Shorthand != "q" {
		t.Errorf("--quiet shorthand = %q, want %q", flag.Shorthand, "q")
	}
	if flag.DefValue != "false" {
		t.Errorf("--quiet default = %q, want %q", flag.DefValue, "false")
	}
}
