package hal

import (
	"context"
	"fmt"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int

	// Steps stops the runner after this many steps; 0 runs forever.
	Steps uint64
}

// RunHeadless runs the app without opening a window.
//
// It returns nil after cfg.Steps steps, ctx.Err() on cancellation, or the
// first error returned by step.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	return runHeadless(ctx, New().(*hostHAL), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step := newApp(h)
	t := time.NewTicker(d)
	defer t.Stop()

	var steps uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			h.t.step()
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			steps++
			if cfg.Steps > 0 && steps >= cfg.Steps {
				return nil
			}
		}
	}
}
