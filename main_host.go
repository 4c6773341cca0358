//go:build !tinygo

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"algcalc/app"
	"algcalc/hal"
	"algcalc/internal/config"
	"algcalc/keypad"

	"github.com/fatih/color"
)

func main() {
	var (
		cfgPath  string
		headless bool
		term     bool
		gpio     bool
		dump     bool
		linger   time.Duration
	)
	flag.StringVar(&cfgPath, "config", "", "Simulator YAML configuration file.")
	flag.BoolVar(&headless, "headless", false, "Run without a window, playing the configured script.")
	flag.BoolVar(&term, "term", false, "Run the simulator inside the terminal.")
	flag.BoolVar(&gpio, "gpio", false, "Scan a keypad on the GPIO lines named in the config.")
	flag.BoolVar(&dump, "dump", false, "Print the last committed frame when headless mode ends.")
	flag.DurationVar(&linger, "linger", 500*time.Millisecond, "Keep running this long after the script in headless mode (0 = until interrupted).")
	flag.Parse()

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	hcfg, closeLog, err := halConfig(cfg, gpio, term)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer closeLog()

	run := func(h hal.HAL) error {
		err := app.Run(h)
		if err != nil {
			app.Fatal(h, err)
		}
		return err
	}

	switch {
	case headless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		var out io.Writer
		if dump {
			out = os.Stdout
		}
		err = hal.RunHeadless(ctx, hcfg, hal.HeadlessConfig{
			Script: script(cfg),
			Linger: linger,
			Dump:   out,
		}, run)
		if err == context.Canceled {
			err = nil
		}
	case term:
		err = hal.RunTerminal(hcfg, run)
	default:
		err = hal.RunWindow(hcfg, hal.WindowConfig{
			Scale:  cfg.Window.Scale,
			TPS:    cfg.Window.TPS,
			Invert: cfg.Window.Invert,
		}, run)
	}
	if err != nil {
		closeLog()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func halConfig(cfg *config.Config, gpio, term bool) (hal.Config, func(), error) {
	hc := hal.Config{
		ChannelDepth: cfg.Channel.Depth,
		ScanInterval: time.Duration(cfg.Scanner.IntervalMs) * time.Millisecond,
		Hold:         time.Duration(cfg.Terminal.HoldMs) * time.Millisecond,
		System: hal.SystemConfig{
			Source: cfg.System.Source,
			Sim: hal.SimSystemConfig{
				MemoryTotal:  cfg.System.MemoryTotal,
				BatteryStart: cfg.System.BatteryStart,
				BatteryDrain: cfg.System.BatteryDrain,
			},
		},
	}

	binds := hal.DefaultBindings()
	for input, k := range cfg.Keys() {
		binds[strings.ToLower(input)] = k
	}
	hc.Bindings = binds

	if gpio {
		if cfg.GPIO == nil {
			return hc, nil, fmt.Errorf("-gpio needs a gpio section in the config")
		}
		hc.GPIO = &hal.GPIOConfig{Rows: cfg.GPIO.Rows, Cols: cfg.GPIO.Cols}
	}

	closeLog := func() {}
	switch {
	case term && cfg.Terminal.LogFile != "":
		f, err := os.OpenFile(cfg.Terminal.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return hc, nil, err
		}
		hc.Log = f
		closeLog = func() { f.Close() }
	case term:
		// The terminal UI owns the screen.
		hc.Log = io.Discard
	default:
		hc.Log = os.Stdout
		// color decides at init whether stdout is a terminal.
		hc.Color = !color.NoColor
	}
	return hc, closeLog, nil
}

func script(cfg *config.Config) []hal.ScriptStep {
	var steps []hal.ScriptStep
	for _, st := range cfg.Script {
		k, _ := keypad.ParseKey(st.Key)
		steps = append(steps, hal.ScriptStep{
			Key:  k,
			Gap:  time.Duration(st.GapMs) * time.Millisecond,
			Hold: time.Duration(st.HoldMs) * time.Millisecond,
		})
	}
	return steps
}
