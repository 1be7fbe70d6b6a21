package config

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minPollIntervalMs   = 1
	maxPollIntervalMs   = 10000
	minRequestTimeoutMs = 1
	maxRequestTimeoutMs = 60000
	minLogMaxSizeMB     = 1
	maxLogMaxSizeMB     = 1024
	maxLogBackups       = 100
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validatePoll(config)...)
	validationErrors = append(validationErrors, validateBackend(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validatePalette(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validatePoll(config *Config) []string {
	if config.Poll.IntervalMs < minPollIntervalMs || config.Poll.IntervalMs > maxPollIntervalMs {
		return []string{fmt.Sprintf(
			"poll.interval_ms must be between %d and %d (got: %d)",
			minPollIntervalMs, maxPollIntervalMs, config.Poll.IntervalMs,
		)}
	}
	return nil
}

func validateBackend(config *Config) []string {
	var validationErrors []string
	switch config.Backend.Mover {
	case MoverYdotool, MoverHyprctl, MoverPortal:
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"backend.mover must be one of: ydotool, hyprctl, portal (got: %s)",
			config.Backend.Mover,
		))
	}
	if config.Backend.RequestTimeoutMs < minRequestTimeoutMs || config.Backend.RequestTimeoutMs > maxRequestTimeoutMs {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"backend.request_timeout_ms must be between %d and %d (got: %d)",
			minRequestTimeoutMs, maxRequestTimeoutMs, config.Backend.RequestTimeoutMs,
		))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < minLogMaxSizeMB || config.Logging.MaxSizeMB > maxLogMaxSizeMB {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.max_size_mb must be between %d and %d (got: %d)",
			minLogMaxSizeMB, maxLogMaxSizeMB, config.Logging.MaxSizeMB,
		))
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxBackups > maxLogBackups {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.max_backups must be between 0 and %d (got: %d)",
			maxLogBackups, config.Logging.MaxBackups,
		))
	}
	return validationErrors
}

func validatePalette(config *Config) []string {
	p := config.Appearance.Palette
	colors := []struct {
		key, value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}

	var validationErrors []string
	for _, c := range colors {
		if !hexColor.MatchString(c.value) {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"appearance.palette.%s must be a hex color like #1a1a1b (got: %s)", c.key, c.value,
			))
		}
	}
	return validationErrors
}
