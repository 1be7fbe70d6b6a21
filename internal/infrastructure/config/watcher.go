package config

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/hyprwarp/internal/logging"
)

// ErrNoConfigFile is returned by Watch when defaults were loaded without a file.
var ErrNoConfigFile = errors.New("no config file to watch")

// Watch reloads the config file whenever it is written and hands the new
// configuration to every OnConfigChange callback. An edit that fails to parse
// or validate is logged and the previous configuration stays active.
// Reload messages go to the logger carried by ctx.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if !m.fileLoaded {
		return ErrNoConfigFile
	}

	logCtx := logging.WithComponent(ctx, "config")
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		logger := logging.FromContext(logCtx)
		logger.Debug().Str("op", e.Op.String()).Str("file", e.Name).Msg("config file changed")

		cfg, err := m.reload()
		if err != nil {
			logger.Warn().Err(err).Msg("config reload failed, keeping previous values")
			return
		}
		for _, cb := range m.snapshotCallbacks() {
			cb(cfg.clone())
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback run after each successful reload. Each
// callback gets its own copy of the configuration.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

func (m *Manager) snapshotCallbacks() []func(*Config) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.callbacks)
}

// reload rereads the file and swaps the active configuration. The returned
// value is the new active configuration and must not be modified.
func (m *Manager) reload() (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg, err := m.unmarshalConfig()
	if err != nil {
		return nil, err
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return cfg, nil
}
