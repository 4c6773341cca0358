//go:build tinygo && baremetal

package hal

import (
	"machine"
	"sync"
)

type uartLogger struct {
	mu   sync.Mutex
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// machinePin adapts a microcontroller pin to GPIOPin.
type machinePin struct {
	name string
	pin  machine.Pin
	caps GPIOCaps
	mode GPIOMode
	set  bool
}

func (p *machinePin) Name() string   { return p.name }
func (p *machinePin) Caps() GPIOCaps { return p.caps }

func (p *machinePin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.name, p.caps, mode, pull); err != nil {
		return err
	}
	cfg := machine.PinConfig{Mode: machine.PinInput}
	switch {
	case mode == GPIOModeOutput:
		cfg.Mode = machine.PinOutput
	case pull == GPIOPullUp:
		cfg.Mode = machine.PinInputPullup
	case pull == GPIOPullDown:
		cfg.Mode = machine.PinInputPulldown
	}
	p.pin.Configure(cfg)
	p.mode = mode
	p.set = true
	return nil
}

func (p *machinePin) Read() (bool, error) {
	if !p.set || p.mode != GPIOModeInput {
		return false, ErrNotImplemented
	}
	return p.pin.Get(), nil
}

func (p *machinePin) Write(level bool) error {
	if !p.set || p.mode != GPIOModeOutput {
		return ErrNotImplemented
	}
	p.pin.Set(level)
	return nil
}
