package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{
			name:    "interval too small",
			mutate:  func(c *Config) { c.Poll.IntervalMs = 0 },
			wantErr: "poll.interval_ms must be between 1 and 10000",
		},
		{
			name:    "interval too large",
			mutate:  func(c *Config) { c.Poll.IntervalMs = 10001 },
			wantErr: "poll.interval_ms",
		},
		{
			name:    "unknown mover",
			mutate:  func(c *Config) { c.Backend.Mover = "wlrctl" },
			wantErr: "backend.mover must be one of",
		},
		{
			name:    "timeout out of range",
			mutate:  func(c *Config) { c.Backend.RequestTimeoutMs = 0 },
			wantErr: "backend.request_timeout_ms",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "logging.level",
		},
		{
			name:    "unknown log format",
			mutate:  func(c *Config) { c.Logging.Format = "text" },
			wantErr: "logging.format",
		},
		{
			name:    "log file size out of range",
			mutate:  func(c *Config) { c.Logging.MaxSizeMB = 0 },
			wantErr: "logging.max_size_mb",
		},
		{
			name:    "negative log backups",
			mutate:  func(c *Config) { c.Logging.MaxBackups = -1 },
			wantErr: "logging.max_backups",
		},
		{
			name:    "short hex color accepted",
			mutate:  func(c *Config) { c.Appearance.Palette.Accent = "#0f0" },
			wantErr: "",
		},
		{
			name:    "named color rejected",
			mutate:  func(c *Config) { c.Appearance.Palette.Border = "grey" },
			wantErr: "appearance.palette.border",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNormalizeConfig_FillsBlanks(t *testing.T) {
	cfg := &Config{}
	normalizeConfig(cfg)

	assert.Equal(t, MoverYdotool, cfg.Backend.Mover)
	assert.Equal(t, "ydotool", cfg.Backend.YdotoolPath)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, DefaultPalette(), cfg.Appearance.Palette)
	assert.NotNil(t, cfg.Warp.ExcludeOutputs)
}
