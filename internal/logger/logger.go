// Package logger writes structured debug logs to a file. The terminal belongs
// to the TUI, so nothing is ever logged to stdout or stderr once the program
// is running.
package logger

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is used when Init is never called.
const DefaultLogPath = "/tmp/stencil-debug.log"

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
	current    = slog.LevelInfo
)

// SetLevel sets the minimum level written to the log file.
func SetLevel(level slog.Level) {
	mu.Lock()
	defer mu.Unlock()
	current = level
	levelVar.Set(level)
}

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		SetLevel(slog.LevelDebug)
	} else {
		SetLevel(slog.LevelInfo)
	}
}

// Init opens the log file at path. Calling it again after a successful Init
// is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if initDone {
		return nil
	}
	return open(path)
}

// open must be called with mu held.
func open(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	levelVar.Set(current)
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

func ensureInit() {
	if initDone {
		return
	}
	if err := open(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Don't retry on every call.
		initDone = true
	}
}

// ComponentLogger returns a logger with the component attribute attached.
//
//	log := logger.ComponentLogger("ChatList")
//	log.Debug("chats loaded", "count", n)
func ComponentLogger(component string) *slog.Logger {
	return Logger().With(slog.String("component", component))
}

// WithSession returns a logger scoped to one screen session.
func WithSession(component, sessionID string) *slog.Logger {
	return ComponentLogger(component).With(slog.String("session", sessionID))
}

// Logger returns the underlying logger, falling back to slog.Default when
// the log file could not be opened.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset drops all logger state so Init can run again. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	slogLogger = nil
	current = slog.LevelInfo
	levelVar = new(slog.LevelVar)
}
