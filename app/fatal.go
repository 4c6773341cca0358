package app

import (
	"fmt"
	"strings"

	"algcalc/hal"
	"algcalc/internal/buildinfo"
)

// Fatal reports an unrecoverable run loop error on the log and, as far
// as the panel still works, on screen. The caller decides whether to
// halt or exit afterwards.
func Fatal(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			l.WriteLineString("fatal: " + line)
		}
	}

	d := h.Display()
	if d == nil {
		return
	}
	r := newRenderer(d)
	if cerr := r.clear(); cerr != nil {
		screenFailed(h, cerr)
		return
	}
	r.lines(margin, r.h, buildinfo.Name+" fatal error:")
	r.lines(margin+2*r.lineH, r.h, err.Error())
	if uerr := d.Update(); uerr != nil {
		screenFailed(h, uerr)
	}
}

func screenFailed(h hal.HAL, err error) {
	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("fatal: screen: %v", err))
	}
}
