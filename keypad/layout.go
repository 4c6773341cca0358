package keypad

import "time"

// Keypad matrix geometry.
const (
	Rows = 4
	Cols = 5
)

// DebounceWindow is the minimum time between two accepted presses of
// the same cell.
const DebounceWindow = 50 * time.Millisecond

// Coord is a cell of the key matrix.
type Coord struct {
	Row int
	Col int
}

// Valid reports whether c lies inside the matrix.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// Layout maps every matrix cell to exactly one key.
type Layout [Rows][Cols]Key

// DefaultLayout is the keycap arrangement of the reference keypad.
//
//	7    8  9    DEL  .
//	4    5  6    +    -
//	1    2  3    *    /
//	<    0  >    =    FN
var DefaultLayout = Layout{
	{D7, D8, D9, Backspace, Dot},
	{D4, D5, D6, Add, Sub},
	{D1, D2, D3, Mul, Div},
	{Left, D0, Right, Eq, Fn},
}

// Lookup returns the key at c. It panics if c is outside the matrix.
func (l *Layout) Lookup(c Coord) Key {
	if !c.Valid() {
		panic("keypad: coordinate outside matrix")
	}
	return l[c.Row][c.Col]
}

// Find returns the first cell carrying key k.
func (l *Layout) Find(k Key) (Coord, bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if l[r][c] == k {
				return Coord{Row: r, Col: c}, true
			}
		}
	}
	return Coord{}, false
}
