// Package config loads, validates and watches the hyprwarp configuration.
package config

import "time"

// Config represents the complete configuration for hyprwarp.
type Config struct {
	// Poll controls how often the cursor is sampled.
	Poll PollConfig `mapstructure:"poll" toml:"poll" json:"poll"`
	// Warp tunes neighbor selection.
	Warp WarpConfig `mapstructure:"warp" toml:"warp" json:"warp"`
	// Backend selects how the compositor is reached and how the cursor is moved.
	Backend    BackendConfig    `mapstructure:"backend" toml:"backend" json:"backend"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// PollConfig holds poll loop settings.
type PollConfig struct {
	// IntervalMs is the wait between two cursor samples.
	IntervalMs int `mapstructure:"interval_ms" toml:"interval_ms" json:"interval_ms" jsonschema:"minimum=1,maximum=10000,default=100"`
	// StopOnReadError ends the loop on the first failed cursor read instead of skipping the tick.
	StopOnReadError bool `mapstructure:"stop_on_read_error" toml:"stop_on_read_error" json:"stop_on_read_error"`
}

// Interval returns IntervalMs as a duration.
func (p PollConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// WarpConfig holds neighbor selection settings.
type WarpConfig struct {
	// LooseVertical lets outputs beside the current one count as Up/Down neighbors.
	LooseVertical bool `mapstructure:"loose_vertical" toml:"loose_vertical" json:"loose_vertical"`
	// ExcludeOutputs lists output names left out of the layout.
	ExcludeOutputs []string `mapstructure:"exclude_outputs" toml:"exclude_outputs" json:"exclude_outputs"`
}

// MoverKind selects the cursor move backend.
type MoverKind string

const (
	MoverYdotool MoverKind = "ydotool"
	MoverHyprctl MoverKind = "hyprctl"
	MoverPortal  MoverKind = "portal"
)

// BackendConfig holds compositor and mover settings.
type BackendConfig struct {
	Mover MoverKind `mapstructure:"mover" toml:"mover" json:"mover" jsonschema:"enum=ydotool,enum=hyprctl,enum=portal,default=ydotool"`
	// YdotoolPath is the ydotool binary, resolved on PATH when not absolute.
	YdotoolPath string `mapstructure:"ydotool_path" toml:"ydotool_path" json:"ydotool_path"`
	// HyprlandSocket overrides the request socket location.
	HyprlandSocket   string `mapstructure:"hyprland_socket" toml:"hyprland_socket" json:"hyprland_socket"`
	RequestTimeoutMs int    `mapstructure:"request_timeout_ms" toml:"request_timeout_ms" json:"request_timeout_ms" jsonschema:"minimum=1,maximum=60000,default=500"`
}

// RequestTimeout returns RequestTimeoutMs as a duration.
func (b BackendConfig) RequestTimeout() time.Duration {
	return time.Duration(b.RequestTimeoutMs) * time.Millisecond
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File also writes JSON lines to $XDG_STATE_HOME/hyprwarp/hyprwarp.log.
	File       bool `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int  `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1,maximum=1024,default=5"`
	MaxBackups int  `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0,maximum=100,default=3"`
}

// AppearanceConfig holds CLI colors.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" toml:"palette" json:"palette"`
}

// ColorPalette defines the terminal colors used by the CLI.
type ColorPalette struct {
	Background     string `mapstructure:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" toml:"border" json:"border"`
}
