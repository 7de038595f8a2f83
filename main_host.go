package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"quark/app"
	"quark/hal"
	"quark/internal/buildinfo"
)

func main() {
	var hcfg hal.HeadlessConfig
	cfg := app.DefaultConfig()
	var spin float64
	var showVersion bool
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Steps per second in headless mode.")
	flag.Uint64Var(&hcfg.Steps, "steps", 0, "Stop after N runner steps in headless mode (0 = run forever).")
	flag.StringVar(&cfg.Mesh, "mesh", cfg.Mesh, "Mesh to show: cube or torus.")
	flag.Float64Var(&spin, "spin", float64(cfg.SpinDegPerSec), "Spin speed in degrees per second (0 disables).")
	flag.IntVar(&cfg.RenormalizeEvery, "renorm", cfg.RenormalizeEvery, "Normalize the orientation after this many compositions.")
	flag.BoolVar(&cfg.Wireframe, "wireframe", false, "Start in wireframe mode.")
	flag.BoolVar(&showVersion, "version", false, "Print build info and exit.")
	flag.Parse()

	if showVersion {
		fmt.Println(buildinfo.String())
		return
	}
	cfg.SpinDegPerSec = float32(spin)
	if cfg.RenormalizeEvery <= 0 {
		fmt.Fprintf(os.Stderr, "invalid -renorm %d: must be positive\n", cfg.RenormalizeEvery)
		os.Exit(2)
	}

	newApp := func(h hal.HAL) func() error { return app.NewWithConfig(h, cfg) }

	var err error
	if hcfg.Enabled {
		cfg.LogDrift = true
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, newApp, hcfg)
	} else {
		err = hal.RunWindow(newApp)
	}
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, app.ErrQuit) {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
