package keypad

import "fmt"

// Key is a logical key on the calculator keypad.
type Key uint8

const (
	D0 Key = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
	Left
	Right
	Backspace
	Fn
	Add
	Sub
	Mul
	Div
	Eq
	Dot

	keyCount
)

var keyNames = [keyCount]string{
	D0:        "D0",
	D1:        "D1",
	D2:        "D2",
	D3:        "D3",
	D4:        "D4",
	D5:        "D5",
	D6:        "D6",
	D7:        "D7",
	D8:        "D8",
	D9:        "D9",
	Left:      "Left",
	Right:     "Right",
	Backspace: "Backspace",
	Fn:        "Fn",
	Add:       "Add",
	Sub:       "Sub",
	Mul:       "Mul",
	Div:       "Div",
	Eq:        "Eq",
	Dot:       "Dot",
}

var keyLegends = [keyCount]string{
	D0:        "0",
	D1:        "1",
	D2:        "2",
	D3:        "3",
	D4:        "4",
	D5:        "5",
	D6:        "6",
	D7:        "7",
	D8:        "8",
	D9:        "9",
	Left:      "<",
	Right:     ">",
	Backspace: "DEL",
	Fn:        "FN",
	Add:       "+",
	Sub:       "-",
	Mul:       "*",
	Div:       "/",
	Eq:        "=",
	Dot:       ".",
}

// String returns the key name, e.g. "D7" or "Backspace".
func (k Key) String() string {
	if k >= keyCount {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// Legend returns the text printed on the keycap.
func (k Key) Legend() string {
	if k >= keyCount {
		return "?"
	}
	return keyLegends[k]
}

// Valid reports whether k is one of the defined keys.
func (k Key) Valid() bool { return k < keyCount }

// ParseKey returns the key whose String form is name.
func ParseKey(name string) (Key, error) {
	for k := Key(0); k < keyCount; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("keypad: unknown key %q", name)
}
