//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"algcalc/keypad"
)

// ScriptStep is one scripted key press.
type ScriptStep struct {
	Key keypad.Key
	// Gap is the idle time before the press.
	Gap time.Duration
	// Hold is how long the switch stays closed.
	Hold time.Duration
}

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Script []ScriptStep
	// Linger keeps the loop running after the script. Zero runs until ctx
	// is done.
	Linger time.Duration
	// Dump, when set, receives the last committed frame as braille.
	Dump io.Writer
}

// RunHeadless runs the loop without a window, playing the script into
// the virtual matrix.
func RunHeadless(ctx context.Context, cfg Config, hcfg HeadlessConfig, run func(HAL) error) error {
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	if len(hcfg.Script) > 0 && h.matrix == nil {
		return errors.New("scripted input needs the virtual keypad")
	}

	done := make(chan error, 1)
	go func() { done <- run(h) }()

	wait := func(d time.Duration) error {
		if d <= 0 {
			return nil
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-done:
			if err == nil {
				err = errors.New("run loop exited")
			}
			return err
		case <-t.C:
			return nil
		}
	}

	for i, st := range hcfg.Script {
		c, ok := keypad.DefaultLayout.Find(st.Key)
		if !ok {
			return fmt.Errorf("script step %d: key %v not on the keypad", i, st.Key)
		}
		if err := wait(st.Gap); err != nil {
			return err
		}
		h.matrix.Press(c)
		err := wait(st.Hold)
		h.matrix.Release(c)
		if err != nil {
			return err
		}
	}

	if hcfg.Linger > 0 {
		if err := wait(hcfg.Linger); err != nil {
			return err
		}
	} else {
		select {
		case <-ctx.Done():
		case err := <-done:
			if err != nil {
				return err
			}
		}
	}

	if hcfg.Dump != nil {
		frame := NewFramebuffer(PanelWidth, PanelHeight)
		h.disp.snapshot(frame)
		for _, line := range Braille(frame) {
			if _, err := fmt.Fprintln(hcfg.Dump, line); err != nil {
				return err
			}
		}
	}
	return nil
}
