//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// hostLogger writes lines as-is, colouring the leading "subsystem:" tag.
type hostLogger struct {
	mu   sync.Mutex
	w    io.Writer
	tags map[string]*color.Color
	rest *color.Color
}

func newHostLogger(w io.Writer, colored bool) *hostLogger {
	l := &hostLogger{
		w: w,
		tags: map[string]*color.Color{
			"key":     color.New(color.FgCyan),
			"scan":    color.New(color.FgYellow),
			"display": color.New(color.FgBlue),
			"app":     color.New(color.FgGreen),
			"boot":    color.New(color.FgGreen, color.Bold),
			"fatal":   color.New(color.FgRed, color.Bold),
		},
		rest: color.New(color.FgMagenta),
	}
	for _, c := range l.tags {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if colored {
		l.rest.EnableColor()
	} else {
		l.rest.DisableColor()
	}
	return l
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, l.decorate(s))
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

func (l *hostLogger) decorate(s string) string {
	tag, msg, ok := strings.Cut(s, ":")
	if !ok || tag == "" || strings.ContainsAny(tag, " \t") {
		return s
	}
	c := l.rest
	if t, ok := l.tags[tag]; ok {
		c = t
	}
	if strings.Contains(msg, "fatal") {
		c = l.tags["fatal"]
	}
	return c.Sprint(tag+":") + msg
}
