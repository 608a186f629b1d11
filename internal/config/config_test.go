package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate runs the test from an empty directory with no STENCIL_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, key := range []string{"STENCIL_LOCAL_USER", "STENCIL_START_SCREEN", "STENCIL_LOG_PATH", "STENCIL_SEED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(filepath.Join(dir, "nope.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	writeFile(t, path, "local_user: Ann\nstart_screen: chats\nseed: 42\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LocalUser != "Ann" {
		t.Errorf("expected local user Ann, got %q", cfg.LocalUser)
	}
	if cfg.StartScreen != "chats" {
		t.Errorf("expected start screen chats, got %q", cfg.StartScreen)
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
	if cfg.LogPath != DefaultLogPath {
		t.Errorf("expected default log path, got %q", cfg.LogPath)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	writeFile(t, path, "local_user: Ann\n")
	t.Setenv("STENCIL_LOCAL_USER", "Bea")
	t.Setenv("STENCIL_SEED", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LocalUser != "Bea" {
		t.Errorf("expected env to win, got %q", cfg.LocalUser)
	}
	if cfg.Seed != 7 {
		t.Errorf("expected seed 7, got %d", cfg.Seed)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "STENCIL_START_SCREEN=feedback\n")
	t.Cleanup(func() { os.Unsetenv("STENCIL_START_SCREEN") })

	cfg, err := Load(filepath.Join(dir, "config.yml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartScreen != "feedback" {
		t.Errorf("expected start screen from .env, got %q", cfg.StartScreen)
	}
}

func TestLoad_InvalidSeed(t *testing.T) {
	dir := isolate(t)
	t.Setenv("STENCIL_SEED", "abc")

	if _, err := Load(filepath.Join(dir, "config.yml")); err == nil {
		t.Error("expected error for non-numeric seed")
	}
}

func TestLoad_UnknownScreen(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	writeFile(t, path, "start_screen: dashboard\n")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for unknown screen")
	}
	if !strings.Contains(err.Error(), "dashboard") {
		t.Errorf("expected error to name the screen, got %v", err)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	writeFile(t, path, "local_user: [unterminated\n")

	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoad_BlankUserFallsBack(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config.yml")
	writeFile(t, path, "local_user: \"  \"\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LocalUser != DefaultLocalUser {
		t.Errorf("expected default local user, got %q", cfg.LocalUser)
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yml")
	want := Config{LocalUser: "Ann", StartScreen: "plans", Seed: 3, LogPath: "/tmp/x.log"}

	if err := Save(path, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
