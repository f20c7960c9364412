package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
)

// Runtime files live together in one directory, like the original daemon
// layout under /tmp/caltraind.

func pidFilePath(runtimeDir string) string {
	return filepath.Join(runtimeDir, "pid")
}

func socketPath(runtimeDir string) string {
	return filepath.Join(runtimeDir, "socket")
}

func ensureRuntimeDir(runtimeDir string) error {
	return os.MkdirAll(runtimeDir, 0o755)
}

func writePidFile(path string) error {
	return os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644)
}

// killExisting terminates a previously started instance, if its pid file is
// still around, and removes the stale pid file. A pid file pointing at a
// process that is already gone is not an error.
func killExisting(pidPath string) error {
	content, err := os.ReadFile(pidPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	pid, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil {
		return fmt.Errorf("pid file %s did not contain a pid: %w", pidPath, err)
	}

	err = syscall.Kill(pid, syscall.SIGTERM)
	if err != nil && !errors.Is(err, syscall.ESRCH) {
		return err
	}
	return os.Remove(pidPath)
}
