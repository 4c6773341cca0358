//go:build tinygo && baremetal

package hal

import (
	"machine"

	"algcalc/fifo"
	"algcalc/keypad"
)

// Depth of the scanner-to-loop ring. The loop drains it far faster than
// a person can press keys.
const firmwareFIFODepth = 2

type tinyGoHAL struct {
	logger *uartLogger
	disp   *einkDisplay
	kbd    *keypad.Driver
	sys    *picoSystem
}

// New returns the calculator board HAL (Pico, RP2040).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Keypad: rows GP14-GP17 (outputs), columns GP22-GP18 (inputs, pull-down).
// E-ink: UC8151 on SPI1, SCK GP10, SDO GP11, CS GP9, DC GP8, RST GP12, BUSY GP13.
// Battery: VSYS/3 on ADC3.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	rowPins := []machine.Pin{machine.GP14, machine.GP15, machine.GP16, machine.GP17}
	colPins := []machine.Pin{machine.GP22, machine.GP21, machine.GP20, machine.GP19, machine.GP18}
	var rows, cols []GPIOPin
	for i, p := range rowPins {
		rows = append(rows, &machinePin{name: "ROW" + string(rune('0'+i)), pin: p, caps: GPIOCapOutput})
	}
	for i, p := range colPins {
		cols = append(cols, &machinePin{name: "COL" + string(rune('0'+i)), pin: p, caps: GPIOCapInput | GPIOCapPullUp | GPIOCapPullDown})
	}
	outs, ins, err := KeypadLines(rows, cols)
	if err != nil {
		logger.WriteLineString("boot: keypad: " + err.Error())
		panic(err)
	}

	ring := fifo.NewRing[keypad.Message](firmwareFIFODepth)
	sc, err := keypad.NewScanner(outs, ins, ring)
	if err != nil {
		logger.WriteLineString("boot: keypad: " + err.Error())
		panic(err)
	}
	startScanner(sc, logger)

	return &tinyGoHAL{
		logger: logger,
		disp:   newEinkDisplay(),
		kbd:    keypad.NewDriver(ring, logger),
		sys:    newPicoSystem(),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return h.disp }
func (h *tinyGoHAL) Keypad() Keypad   { return h.kbd }
func (h *tinyGoHAL) System() System   { return h.sys }
