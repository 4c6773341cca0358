package hal

import (
	"fmt"

	"algcalc/keypad"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

func checkConfig(name string, caps GPIOCaps, mode GPIOMode, pull GPIOPull) error {
	switch mode {
	case GPIOModeInput:
		if caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", name)
		}
	case GPIOModeOutput:
		if caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", name)
		}
	case GPIOPullDown:
		if caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", name)
	}
	return nil
}

// KeypadLines configures rows as outputs (driven low) and columns as
// pulled-down inputs, and returns them in the form the scanner takes.
func KeypadLines(rows, cols []GPIOPin) ([]keypad.OutputLine, []keypad.InputLine, error) {
	outs := make([]keypad.OutputLine, 0, len(rows))
	for _, p := range rows {
		if err := p.Configure(GPIOModeOutput, GPIOPullNone); err != nil {
			return nil, nil, err
		}
		if err := p.Write(false); err != nil {
			return nil, nil, fmt.Errorf("gpio: pin %s: %w", p.Name(), err)
		}
		outs = append(outs, p)
	}
	ins := make([]keypad.InputLine, 0, len(cols))
	for _, p := range cols {
		if err := p.Configure(GPIOModeInput, GPIOPullDown); err != nil {
			return nil, nil, err
		}
		ins = append(ins, p)
	}
	return outs, ins, nil
}
