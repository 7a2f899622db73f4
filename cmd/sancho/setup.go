package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sancho-bros/internal/config"
	"github.com/vovakirdan/sancho-bros/internal/level"
)

// loadGameConfig applies --config, --difficulty and --fps.
func loadGameConfig() (*config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	config.ApplyPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Window.FPS = flagFPS
	}
	return &cfg, nil
}

// levelLoader reads levels from dir, or the built-in campaign when dir is empty.
func levelLoader(dir string) (*level.Loader, error) {
	if dir == "" {
		return level.Embedded(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("levels: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("levels: %s is not a directory", dir)
	}
	loader := level.NewLoader(dir)
	if loader.Count() == 0 {
		return nil, fmt.Errorf("levels: no level_1 file in %s", dir)
	}
	return loader, nil
}

// newFileLogger opens path for appending and returns a logger writing to it.
// The returned closer must be called on exit.
func newFileLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	path = expandHome(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	return logger, f, nil
}

func newStderrLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
