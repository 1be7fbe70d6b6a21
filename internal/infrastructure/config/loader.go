package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
	fileLoaded bool // false when Load fell back to defaults
}

// NewManager creates a new configuration manager. An empty configFile means
// config.toml in the XDG config directory.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()
	v.SetConfigType("toml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath(configDir)
	}

	// Every key has a default, so AutomaticEnv covers HYPRWARP_POLL_INTERVAL_MS and friends.
	v.SetEnvPrefix("HYPRWARP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "HYPRWARP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind HYPRWARP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "HYPRWARP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind HYPRWARP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing file is not an error; defaults apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		m.fileLoaded = true
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
		m.fileLoaded = false
		return nil
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		configFile, _ = GetConfigFile()
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Backend.Mover = MoverKind(strings.ToLower(strings.TrimSpace(string(config.Backend.Mover))))
	if config.Backend.Mover == "" {
		config.Backend.Mover = MoverYdotool
	}
	if strings.TrimSpace(config.Backend.YdotoolPath) == "" {
		config.Backend.YdotoolPath = "ydotool"
	}
	config.Backend.HyprlandSocket = strings.TrimSpace(config.Backend.HyprlandSocket)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "" {
		config.Logging.Format = defaultLogFormat
	}

	excluded := make([]string, 0, len(config.Warp.ExcludeOutputs))
	for _, name := range config.Warp.ExcludeOutputs {
		if name = strings.TrimSpace(name); name != "" {
			excluded = append(excluded, name)
		}
	}
	config.Warp.ExcludeOutputs = excluded

	normalizePalette(&config.Appearance.Palette)
}

// normalizePalette fills unset colors from the default palette.
func normalizePalette(p *ColorPalette) {
	d := DefaultPalette()
	fill := func(v *string, def string) {
		if strings.TrimSpace(*v) == "" {
			*v = def
		}
	}
	fill(&p.Background, d.Background)
	fill(&p.Surface, d.Surface)
	fill(&p.SurfaceVariant, d.SurfaceVariant)
	fill(&p.Text, d.Text)
	fill(&p.Muted, d.Muted)
	fill(&p.Accent, d.Accent)
	fill(&p.Border, d.Border)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.clone()
}

// clone returns a copy that shares no slices with c.
func (c *Config) clone() *Config {
	out := *c
	out.Warp.ExcludeOutputs = make([]string, len(c.Warp.ExcludeOutputs))
	copy(out.Warp.ExcludeOutputs, c.Warp.ExcludeOutputs)
	return &out
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setPollDefaults(defaults)
	m.setWarpDefaults(defaults)
	m.setBackendDefaults(defaults)
	m.setLoggingDefaults(defaults)
	m.setAppearanceDefaults(defaults)
}

func (m *Manager) setPollDefaults(defaults *Config) {
	m.viper.SetDefault("poll.interval_ms", defaults.Poll.IntervalMs)
	m.viper.SetDefault("poll.stop_on_read_error", defaults.Poll.StopOnReadError)
}

func (m *Manager) setWarpDefaults(defaults *Config) {
	m.viper.SetDefault("warp.loose_vertical", defaults.Warp.LooseVertical)
	m.viper.SetDefault("warp.exclude_outputs", defaults.Warp.ExcludeOutputs)
}

func (m *Manager) setBackendDefaults(defaults *Config) {
	m.viper.SetDefault("backend.mover", string(defaults.Backend.Mover))
	m.viper.SetDefault("backend.ydotool_path", defaults.Backend.YdotoolPath)
	m.viper.SetDefault("backend.hyprland_socket", defaults.Backend.HyprlandSocket)
	m.viper.SetDefault("backend.request_timeout_ms", defaults.Backend.RequestTimeoutMs)
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
}
