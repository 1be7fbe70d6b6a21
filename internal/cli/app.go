// Package cli wires configuration, logging and backends for the hyprwarp commands.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/hyprwarp/internal/application/port"
	"github.com/bnema/hyprwarp/internal/cli/styles"
	"github.com/bnema/hyprwarp/internal/domain/build"
	"github.com/bnema/hyprwarp/internal/infrastructure/config"
	"github.com/bnema/hyprwarp/internal/infrastructure/hyprland"
	"github.com/bnema/hyprwarp/internal/infrastructure/portal"
	"github.com/bnema/hyprwarp/internal/infrastructure/ydotool"
	"github.com/bnema/hyprwarp/internal/logging"
)

// ErrUnknownMover is returned for a mover name outside config.MoverKind.
var ErrUnknownMover = errors.New("unknown mover")

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx     context.Context
	closers []func() error
}

// NewApp loads the configuration and builds the logger. An empty configFile
// means the default XDG location.
func NewApp(configFile string) (*App, error) {
	mgr, err := config.NewManager(configFile)
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, logErr := newLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("log file disabled")
	}

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("mover", string(cfg.Backend.Mover)).
		Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(cfg),
		ctx:     ctx,
		closers: []func() error{func() error { logCleanup(); return nil }},
	}, nil
}

// newLogger builds the stderr logger, plus the rotating file when logging.file is set.
func newLogger(cfg *config.Config) (zerolog.Logger, func(), error) {
	base := logging.DefaultConfig()
	base.Level = logging.ParseLevel(cfg.Logging.Level)
	base.Format = cfg.Logging.Format
	base.TimeFormat = logging.ConsoleTimeFormat

	file := logging.FileConfig{
		Enabled:    cfg.Logging.File,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
	}
	if file.Enabled {
		dir, err := config.GetStateDir()
		if err != nil {
			return logging.New(base), func() {}, fmt.Errorf("resolve state directory: %w", err)
		}
		file.Dir = dir
	}
	return logging.NewWithFile(base, file)
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Compositor returns the Hyprland adapter. The socket comes from
// backend.hyprland_socket, or from the running instance signature.
func (a *App) Compositor() (*hyprland.Adapter, error) {
	path := a.Config.Backend.HyprlandSocket
	if path == "" {
		var err error
		path, err = hyprland.SocketPath(os.Getenv)
		if err != nil {
			return nil, err
		}
	}

	logging.FromContext(a.ctx).Debug().Str("socket", path).Msg("using hyprland socket")
	return hyprland.NewAdapter(hyprland.NewClient(path, a.Config.Backend.RequestTimeout())), nil
}

// Mover builds the cursor mover for kind. The portal mover starts its
// session here, which may wait for the user to approve it.
func (a *App) Mover(ctx context.Context, kind config.MoverKind, compositor *hyprland.Adapter) (port.CursorMover, error) {
	switch kind {
	case config.MoverHyprctl:
		return compositor, nil
	case config.MoverYdotool:
		return ydotool.NewMover(a.Config.Backend.YdotoolPath), nil
	case config.MoverPortal:
		m := portal.NewRemoteDesktopMover()
		if err := m.Open(ctx); err != nil {
			return nil, fmt.Errorf("start remote desktop session: %w", err)
		}
		a.closers = append(a.closers, m.Close)
		return m, nil
	default:
		return nil, fmt.Errorf("%w %q (want ydotool, hyprctl or portal)", ErrUnknownMover, kind)
	}
}

// Checkers returns every backend checker, the compositor first. Checking the
// portal does not start a session.
func (a *App) Checkers(compositor *hyprland.Adapter) []port.BackendChecker {
	checkers := make([]port.BackendChecker, 0, 3)
	if compositor != nil {
		checkers = append(checkers, compositor)
	}
	return append(checkers,
		ydotool.NewMover(a.Config.Backend.YdotoolPath),
		portal.NewRemoteDesktopMover(),
	)
}

// ParseMover validates a mover name given on the command line.
func ParseMover(name string) (config.MoverKind, error) {
	switch kind := config.MoverKind(name); kind {
	case config.MoverYdotool, config.MoverHyprctl, config.MoverPortal:
		return kind, nil
	default:
		return "", fmt.Errorf("%w %q (want ydotool, hyprctl or portal)", ErrUnknownMover, name)
	}
}
