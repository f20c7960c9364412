package main

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestWritePidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pid")
	if err := writePidFile(path); err != nil {
		t.Fatalf("writePidFile: %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(content) != strconv.Itoa(os.Getpid()) {
		t.Errorf("pid file contains %q", content)
	}
}

func TestKillExistingNoPidFile(t *testing.T) {
	if err := killExisting(filepath.Join(t.TempDir(), "pid")); err != nil {
		t.Errorf("missing pid file should not be an error, got %v", err)
	}
}

func TestKillExistingGarbagePidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pid")
	if err := os.WriteFile(path, []byte("not a pid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := killExisting(path); err == nil {
		t.Error("expected an error for a pid file without a pid")
	}
}

func TestKillExistingStalePid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pid")
	// pids near the max are practically never live
	if err := os.WriteFile(path, []byte("4194200"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := killExisting(path); err != nil {
		t.Errorf("stale pid should be cleaned up quietly, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("stale pid file was not removed")
	}
}
