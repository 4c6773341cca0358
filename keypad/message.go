package keypad

// Message is the wire form of a key press on the event channel: the
// row in the high half-word and the column in the low half-word.
type Message uint32

const colMask = 0xFFFF

// Encode packs c into a Message.
func Encode(c Coord) Message {
	return Message(uint32(c.Row)<<16 | uint32(c.Col)&colMask)
}

// Decode unpacks m. ok is false if m does not name a matrix cell.
func (m Message) Decode() (c Coord, ok bool) {
	c = Coord{Row: int(uint32(m) >> 16), Col: int(uint32(m) & colMask)}
	return c, c.Valid()
}
