package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestDir points the package at a temporary log directory and resets
// global state for the duration of the test
func setupTestDir(t *testing.T) {
	t.Helper()

	tempDir := t.TempDir()

	origLogDir := logDir
	origInitErr := initErr
	origSessionID := sessionID

	logDir = tempDir
	initErr = nil
	initOnce = sync.Once{}
	sessionID = ""
	sessionIDOnce = sync.Once{}

	t.Cleanup(func() {
		logDir = origLogDir
		initErr = origInitErr
		initOnce = sync.Once{}
		sessionID = origSessionID
		sessionIDOnce = sync.Once{}
	})
}

func TestNewLogger(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test-component")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	if logger.component != "test-component" {
		t.Errorf("Expected component 'test-component', got %q", logger.component)
	}

	if logger.sessionID == "" {
		t.Error("Expected non-empty session ID")
	}

	if _, err := os.Stat(logger.LogPath()); os.IsNotExist(err) {
		t.Errorf("Log file does not exist at %s", logger.LogPath())
	}
}

func TestLoggerFormatting(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	logger.Printf("Test message %d", 123)
	logger.Debugf("Debug message")
	logger.Infof("Info message")
	logger.Warnf("Warning message")
	logger.Errorf("Error message")

	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	logContent := string(content)
	expectedPatterns := []string{
		"[test] [INFO] Test message 123",
		"[test] [DEBUG] Debug message",
		"[test] [INFO] Info message",
		"[test] [WARN] Warning message",
		"[test] [ERROR] Error message",
	}

	for _, pattern := range expectedPatterns {
		if !strings.Contains(logContent, pattern) {
			t.Errorf("Log content missing expected pattern: %q\nContent:\n%s", pattern, logContent)
		}
	}
}

func TestMultipleComponents(t *testing.T) {
	setupTestDir(t)

	clock, err := NewLogger("clock")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer clock.Close()

	weather, err := NewLogger("weather")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer weather.Close()

	if clock.LogPath() != weather.LogPath() {
		t.Errorf("Expected same log path, got %q and %q", clock.LogPath(), weather.LogPath())
	}

	clock.Printf("tick")
	weather.Printf("fetched")

	content, err := os.ReadFile(clock.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}

	if !strings.Contains(string(content), "[clock]") || !strings.Contains(string(content), "[weather]") {
		t.Errorf("Log missing component entries:\n%s", content)
	}
}

func TestComponentSharesOutput(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriterLogger("app", &buf)
	child := root.Component("bookmarks")

	child.Warnf("no sets")

	if !strings.Contains(buf.String(), "[bookmarks] [WARN] no sets") {
		t.Errorf("unexpected output: %q", buf.String())
	}
	if err := child.Close(); err != nil {
		t.Errorf("closing a derived logger should be a no-op, got %v", err)
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard("test")
	logger.Errorf("dropped %d", 1)
	if logger.LogPath() != "" {
		t.Errorf("discard logger should not have a path, got %q", logger.LogPath())
	}
}

func TestGetSessionID(t *testing.T) {
	setupTestDir(t)

	id1 := GetSessionID()
	id2 := GetSessionID()

	if id1 != id2 {
		t.Errorf("Expected consistent session ID, got %q and %q", id1, id2)
	}
	if id1 == "" {
		t.Error("Expected non-empty session ID")
	}
}

func TestGetLogDirectory(t *testing.T) {
	setupTestDir(t)

	dir, err := GetLogDirectory()
	if err != nil {
		t.Fatalf("Failed to get log directory: %v", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("Log directory does not exist or is not a directory: %s", dir)
	}
}

func TestLoggerClose(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	if err := logger.Close(); err != nil {
		t.Errorf("First close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Second close failed: %v", err)
	}
}

func TestLogPathFormat(t *testing.T) {
	setupTestDir(t)

	logger, err := NewLogger("test")
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Close()

	fileName := filepath.Base(logger.LogPath())
	if !strings.HasSuffix(fileName, "-startpage.log") {
		t.Errorf("Expected log file to end with '-startpage.log', got %q", fileName)
	}

	sessionPart := strings.TrimSuffix(fileName, "-startpage.log")
	if sessionPart != logger.SessionID() {
		t.Errorf("Expected file name to start with session ID %q, got %q", logger.SessionID(), sessionPart)
	}
}
