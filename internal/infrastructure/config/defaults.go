package config

// Default configuration constants
const (
	defaultPollIntervalMs   = 100 // matches the original fixed sleep
	defaultRequestTimeoutMs = 500

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 5
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Poll: PollConfig{
			IntervalMs:      defaultPollIntervalMs,
			StopOnReadError: false,
		},
		Warp: WarpConfig{
			LooseVertical:  false,
			ExcludeOutputs: []string{},
		},
		Backend: BackendConfig{
			Mover:            MoverYdotool,
			YdotoolPath:      "ydotool",
			HyprlandSocket:   "",
			RequestTimeoutMs: defaultRequestTimeoutMs,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			File:       false,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
		},
	}
}

// DefaultPalette returns the dark palette used by the CLI.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
	}
}
