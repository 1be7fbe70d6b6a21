package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// LogFileName is the active log file inside FileConfig.Dir.
const LogFileName = "hyprwarp.log"

const logDirPerm = 0o755

// FileConfig controls the optional rotating log file. The file always holds
// JSON lines, whatever the stderr format.
type FileConfig struct {
	Enabled    bool
	Dir        string
	MaxSizeMB  int
	MaxBackups int
}

// NewWithFile creates a logger writing to stderr and, when enabled, to a
// rotating file. The cleanup function closes the file.
func NewWithFile(cfg Config, file FileConfig) (zerolog.Logger, func(), error) {
	if !file.Enabled {
		return New(cfg), func() {}, nil
	}

	if err := os.MkdirAll(file.Dir, logDirPerm); err != nil {
		return New(cfg), func() {}, fmt.Errorf("create log directory: %w", err)
	}
	rotator, err := NewLogRotator(RotatorConfig{
		Dir:        file.Dir,
		Name:       LogFileName,
		MaxSize:    int64(file.MaxSizeMB) << 20,
		MaxBackups: file.MaxBackups,
		Compress:   true,
	})
	if err != nil {
		return New(cfg), func() {}, err
	}

	var out io.Writer = os.Stderr
	if cfg.Output != nil {
		out = cfg.Output
	}
	if cfg.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(out, rotator)).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
