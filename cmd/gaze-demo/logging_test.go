package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// inTempDir runs the test from a scratch directory so logs/ never lands in the source tree
func inTempDir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		_ = os.Chdir(wd)
	})
}

func TestSetupLogging_DiscardWithoutDebug(t *testing.T) {
	inTempDir(t)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("Expected nil log file when debug is off")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Log output = %v, want io.Discard", log.Writer())
	}
	if _, err := os.Stat(logDir); !os.IsNotExist(err) {
		t.Error("Log directory should not be created when debug is off")
	}
}

func TestSetupLogging_WritesFile(t *testing.T) {
	inTempDir(t)

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file when debug is on")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("Log output must not reach the terminal")
	}

	log.Println("zoom session started")
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Read log: %v", err)
	}
	if !strings.Contains(string(data), "zoom session started") {
		t.Errorf("Log file missing message, got %q", data)
	}
}

func TestSetupLogging_RotatesLargeFile(t *testing.T) {
	inTempDir(t)

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != logFileName && strings.HasPrefix(e.Name(), "gaze-demo-") {
			rotated = true
		}
	}
	if !rotated {
		t.Error("Expected a rotated log file")
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("New log size = %d, want <= %d", info.Size(), maxLogSize)
	}
}
