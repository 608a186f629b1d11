package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger initializes the logger against a temp file.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()
	t.Cleanup(Reset)

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(data)
}

func TestInit_WritesHeader(t *testing.T) {
	path := setupTestLogger(t)

	if !strings.Contains(readLog(t, path), "Logger initialized") {
		t.Error("expected init line in log file")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := Init(filepath.Join(t.TempDir(), "missing", "dir", "log.txt"))
	if err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestComponentLogger(t *testing.T) {
	path := setupTestLogger(t)

	ComponentLogger("ChatList").Info("chats loaded", "count", 20)

	content := readLog(t, path)
	if !strings.Contains(content, "component=ChatList") {
		t.Errorf("expected component attribute, got: %s", content)
	}
	if !strings.Contains(content, "count=20") {
		t.Errorf("expected count attribute, got: %s", content)
	}
}

func TestWithSession(t *testing.T) {
	path := setupTestLogger(t)

	WithSession("Feedback", "abc-123").Info("opened")

	content := readLog(t, path)
	if !strings.Contains(content, "session=abc-123") {
		t.Errorf("expected session attribute, got: %s", content)
	}
}

func TestSetDebug(t *testing.T) {
	path := setupTestLogger(t)

	Logger().Debug("hidden message")
	if strings.Contains(readLog(t, path), "hidden message") {
		t.Error("debug message should not be written at info level")
	}

	SetDebug(true)
	Logger().Debug("visible message")
	if !strings.Contains(readLog(t, path), "visible message") {
		t.Error("debug message should be written after SetDebug(true)")
	}
}

func TestSetLevel_Warn(t *testing.T) {
	path := setupTestLogger(t)

	SetLevel(slog.LevelWarn)
	Logger().Info("quiet info")
	Logger().Warn("loud warning")

	content := readLog(t, path)
	if strings.Contains(content, "quiet info") {
		t.Error("info message should not be written at warn level")
	}
	if !strings.Contains(content, "loud warning") {
		t.Error("warn message should be written at warn level")
	}
}

func TestSetLevel_BeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	SetLevel(slog.LevelWarn)
	path := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(path); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Logger().Info("quiet info")

	if strings.Contains(readLog(t, path), "quiet info") {
		t.Error("level set before Init should apply to the log file")
	}
}

func TestClose(t *testing.T) {
	setupTestLogger(t)

	Close()

	// Logging after close falls back to the default logger and must not panic.
	Logger().Info("after close")
}
