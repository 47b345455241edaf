// Command particles runs the particle simulation in a window, or headless
// with -headless.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/particles/host"
	"github.com/katalvlaran/particles/internal/buildinfo"
)

func main() {
	var (
		cfg      host.Config
		headless bool
		version  bool
		level    string
		spawnX   int
		spawnY   int
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.IntVar(&cfg.Width, "width", host.DefaultWidth, "Render target width in pixels.")
	flag.IntVar(&cfg.Height, "height", host.DefaultHeight, "Render target height in pixels.")
	flag.IntVar(&cfg.Hz, "hz", host.DefaultHz, "Ticks per second.")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Random seed (0 = default seed).")
	flag.IntVar(&cfg.Limit, "limit", 0, "Maximum live particles (0 = unbounded).")
	flag.IntVar(&cfg.Burst, "burst", 0, "Particles per spawn event (0 = default).")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.Uint64Var(&cfg.SpawnTicks, "spawn-ticks", 30, "Spawn one burst per tick for the first N ticks in headless mode.")
	flag.IntVar(&spawnX, "x", -1, "Headless spawn pixel x (-1 = center).")
	flag.IntVar(&spawnY, "y", -1, "Headless spawn pixel y (-1 = center).")
	flag.StringVar(&cfg.Out, "out", "", "Write the last headless frame to this PNG file.")
	flag.StringVar(&level, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	cfg.Logger = logger.With("version", buildinfo.Short())

	if spawnX >= 0 && spawnY >= 0 {
		cfg.SpawnAt = image.Pt(spawnX, spawnY)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if _, err := host.RunHeadless(ctx, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error("headless run failed", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := host.RunWindow(cfg); err != nil {
		logger.Error("window run failed", "err", err)
		os.Exit(1)
	}
}
