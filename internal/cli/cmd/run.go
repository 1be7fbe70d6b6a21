package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/hyprwarp/internal/application/usecase"
	"github.com/bnema/hyprwarp/internal/cli"
	"github.com/bnema/hyprwarp/internal/infrastructure/config"
	"github.com/bnema/hyprwarp/internal/logging"
)

var (
	runInterval time.Duration
	runMaxTicks int
	runMover    string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the cursor warping loop",
	Long: `Snapshot the output layout, then poll the cursor and warp it onto the
adjacent output whenever it rests on a border.

The layout is read once at startup; restart after plugging or moving
outputs. Editing poll.interval_ms in the config file applies while running.

Examples:
  hyprwarp run
  hyprwarp run --interval 50ms --mover hyprctl
  hyprwarp run --max-ticks 100`,
	RunE: runWarp,
}

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd)
}

func addRunFlags(c *cobra.Command) {
	c.Flags().DurationVarP(&runInterval, "interval", "i", 0, "poll interval (overrides poll.interval_ms)")
	c.Flags().IntVar(&runMaxTicks, "max-ticks", 0, "stop after this many ticks (0 runs until interrupted)")
	c.Flags().StringVarP(&runMover, "mover", "m", "", "cursor mover: ydotool, hyprctl or portal (overrides backend.mover)")
}

func runWarp(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	cfg := app.Config

	ctx, stop := signal.NotifyContext(logging.WithComponent(app.Ctx(), "warp"), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer logging.RecoverPanic(ctx)
	log := logging.FromContext(ctx)
	logging.LogCoreDumpLimits(ctx)

	interval := cfg.Poll.Interval()
	intervalFromFlag := cmd.Flags().Changed("interval")
	if intervalFromFlag {
		if runInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", runInterval)
		}
		interval = runInterval
	}

	kind := cfg.Backend.Mover
	if runMover != "" {
		var err error
		if kind, err = cli.ParseMover(strings.ToLower(strings.TrimSpace(runMover))); err != nil {
			return err
		}
	}

	compositor, err := app.Compositor()
	if err != nil {
		return err
	}

	layoutOut, err := usecase.NewLoadLayoutUseCase(compositor).Execute(ctx, usecase.LoadLayoutInput{
		Exclude:       cfg.Warp.ExcludeOutputs,
		LooseVertical: cfg.Warp.LooseVertical,
	})
	if err != nil {
		return err
	}

	mover, err := app.Mover(ctx, kind, compositor)
	if err != nil {
		if interrupted(ctx, err) {
			log.Info().Str("mover", string(kind)).Msg("interrupted while starting the mover")
			return nil
		}
		return err
	}

	warpUC := usecase.NewWarpCursorUseCase(compositor, mover, layoutOut.Registry)
	loop := usecase.NewWarpLoopUseCase(warpUC, interval)

	if !intervalFromFlag {
		watchInterval(app, loop)
	}

	log.Info().
		Int("outputs", layoutOut.Registry.Len()).
		Str("mover", string(kind)).
		Dur("interval", interval).
		Msg("warping cursor")

	out, err := loop.Run(ctx, usecase.RunWarpLoopInput{
		MaxTicks:        runMaxTicks,
		StopOnReadError: cfg.Poll.StopOnReadError,
	})

	event := log.Info()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.
		Int("ticks", out.Ticks).
		Int("warps", out.Warps()).
		Int("move_failures", out.Outcomes[usecase.WarpOutcomeMoveFailed]).
		Int("read_failures", out.Outcomes[usecase.WarpOutcomeReadFailed]).
		Msg("warp loop stopped")

	return err
}

// interrupted reports whether err only reflects ctx being cancelled, as when
// SIGINT arrives while the portal waits for approval.
func interrupted(ctx context.Context, err error) bool {
	return ctx.Err() != nil && usecase.IsCancellation(err)
}

// watchInterval applies poll.interval_ms edits to the running loop. Without a
// config file there is nothing to watch.
func watchInterval(app *cli.App, loop *usecase.WarpLoopUseCase) {
	log := logging.FromContext(app.Ctx())

	app.Manager.OnConfigChange(func(c *config.Config) {
		if d := c.Poll.Interval(); d != loop.Interval() {
			loop.SetInterval(d)
			log.Info().Dur("interval", d).Msg("poll interval updated")
		}
	})
	if err := app.Manager.Watch(app.Ctx()); err != nil {
		if errors.Is(err, config.ErrNoConfigFile) {
			log.Debug().Msg("no config file, live reload disabled")
			return
		}
		log.Warn().Err(err).Msg("config live reload disabled")
	}
}
