//go:build !tinygo && linux

package hal

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// openGPIO resolves the configured line names through periph.
func openGPIO(cfg GPIOConfig) (rows, cols []GPIOPin, err error) {
	if _, err := host.Init(); err != nil {
		return nil, nil, fmt.Errorf("periph init: %w", err)
	}
	lookup := func(name string, caps GPIOCaps) (GPIOPin, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("gpio: no line named %q", name)
		}
		return &periphPin{pin: p, caps: caps}, nil
	}
	for _, name := range cfg.Rows {
		p, err := lookup(name, GPIOCapOutput)
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, p)
	}
	for _, name := range cfg.Cols {
		p, err := lookup(name, GPIOCapInput|GPIOCapPullUp|GPIOCapPullDown)
		if err != nil {
			return nil, nil, err
		}
		cols = append(cols, p)
	}
	return rows, cols, nil
}

type periphPin struct {
	pin  gpio.PinIO
	caps GPIOCaps

	mu   sync.Mutex
	mode GPIOMode
	set  bool
}

func (p *periphPin) Name() string   { return p.pin.Name() }
func (p *periphPin) Caps() GPIOCaps { return p.caps }

func (p *periphPin) Configure(mode GPIOMode, pull GPIOPull) error {
	if err := checkConfig(p.Name(), p.caps, mode, pull); err != nil {
		return err
	}
	var err error
	switch mode {
	case GPIOModeOutput:
		err = p.pin.Out(gpio.Low)
	default:
		pp := gpio.Float
		switch pull {
		case GPIOPullUp:
			pp = gpio.PullUp
		case GPIOPullDown:
			pp = gpio.PullDown
		}
		err = p.pin.In(pp, gpio.NoEdge)
	}
	if err != nil {
		return fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
	}
	p.mu.Lock()
	p.mode = mode
	p.set = true
	p.mu.Unlock()
	return nil
}

func (p *periphPin) Read() (bool, error) {
	p.mu.Lock()
	ok := p.set && p.mode == GPIOModeInput
	p.mu.Unlock()
	if !ok {
		return false, fmt.Errorf("gpio: pin %s: not in input mode", p.Name())
	}
	return p.pin.Read() == gpio.High, nil
}

func (p *periphPin) Write(level bool) error {
	p.mu.Lock()
	ok := p.set && p.mode == GPIOModeOutput
	p.mu.Unlock()
	if !ok {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.Name())
	}
	return p.pin.Out(gpio.Level(level))
}
