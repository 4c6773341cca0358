//go:build !tinygo

package hal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jroimartin/gocui"
)

const (
	termPanelCols = (PanelWidth + 1) / 2
	termPanelRows = (PanelHeight + 3) / 4
)

var terminalSpecialKeys = map[string][]gocui.Key{
	"backspace": {gocui.KeyBackspace, gocui.KeyBackspace2},
	"delete":    {gocui.KeyDelete},
	"left":      {gocui.KeyArrowLeft},
	"right":     {gocui.KeyArrowRight},
	"enter":     {gocui.KeyEnter},
	"escape":    {gocui.KeyEsc},
}

func terminalLayout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	if maxX < termPanelCols+2 || maxY < termPanelRows+5 {
		return fmt.Errorf("terminal too small: need %dx%d (^C to quit)", termPanelCols+2, termPanelRows+5)
	}
	if v, err := g.SetView("panel", 0, 0, termPanelCols+1, termPanelRows+1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "algcalc"
	}
	if v, err := g.SetView("status", 0, termPanelRows+2, termPanelCols+1, termPanelRows+4); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
	}
	return nil
}

// RunTerminal runs the simulator inside the terminal. Key releases are
// not visible to a terminal, so every bound key taps its switch for
// cfg.Hold.
func RunTerminal(cfg Config, run func(HAL) error) error {
	h, err := newHost(cfg)
	if err != nil {
		return err
	}
	if h.matrix == nil {
		return errors.New("terminal mode needs the virtual keypad")
	}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return err
	}
	defer g.Close()

	g.SetManagerFunc(terminalLayout)

	quit := func(*gocui.Gui, *gocui.View) error { return gocui.ErrQuit }
	for _, k := range []gocui.Key{gocui.KeyCtrlC, gocui.KeyCtrlQ} {
		if err := g.SetKeybinding("", k, gocui.ModNone, quit); err != nil {
			return err
		}
	}
	for name := range h.binds {
		name := name
		press := func(*gocui.Gui, *gocui.View) error {
			h.input(name)
			return nil
		}
		if keys, ok := terminalSpecialKeys[name]; ok {
			for _, k := range keys {
				if err := g.SetKeybinding("", k, gocui.ModNone, press); err != nil {
					return err
				}
			}
			continue
		}
		if r := []rune(name); len(r) == 1 {
			if err := g.SetKeybinding("", r[0], gocui.ModNone, press); err != nil {
				return err
			}
		}
	}

	frame := NewFramebuffer(PanelWidth, PanelHeight)
	draw := func(g *gocui.Gui) error {
		h.disp.snapshot(frame)
		if v, err := g.View("panel"); err == nil {
			v.Clear()
			fmt.Fprint(v, strings.Join(Braille(frame), "\n"))
		}
		if v, err := g.View("status"); err == nil {
			commits, refreshes := h.disp.stats()
			v.Clear()
			fmt.Fprintf(v, "commits %d  refreshes %d  ^C quit", commits, refreshes)
		}
		return nil
	}
	h.disp.setOnCommit(func() { g.Update(draw) })

	go func() {
		err := run(h)
		g.Update(func(*gocui.Gui) error {
			if err != nil {
				return err
			}
			return gocui.ErrQuit
		})
	}()

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}
