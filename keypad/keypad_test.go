package keypad

import "testing"

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			in := Coord{Row: r, Col: c}
			out, ok := Encode(in).Decode()
			if !ok || out != in {
				t.Fatalf("Decode(Encode(%v)) = %v, %v", in, out, ok)
			}
		}
	}
}

func TestMessageLayout(t *testing.T) {
	if got := Encode(Coord{Row: 3, Col: 4}); got != 0x0003_0004 {
		t.Fatalf("Encode(3,4) = 0x%08x, want 0x00030004", uint32(got))
	}
}

func TestDecodeRejectsOutsideMatrix(t *testing.T) {
	for _, m := range []Message{
		Message(Rows << 16),
		Message(Cols),
		0xFFFF_FFFF,
	} {
		if c, ok := m.Decode(); ok {
			t.Fatalf("Decode(0x%08x) = %v, true", uint32(m), c)
		}
	}
}

func TestLayoutTotal(t *testing.T) {
	seen := map[Key]int{}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			k := DefaultLayout.Lookup(Coord{Row: r, Col: c})
			if !k.Valid() {
				t.Fatalf("cell (%d,%d) maps to invalid key %v", r, c, k)
			}
			seen[k]++
		}
	}
	if len(seen) != int(keyCount) {
		t.Fatalf("layout covers %d keys, want %d", len(seen), keyCount)
	}
	for k, n := range seen {
		if n != 1 {
			t.Fatalf("key %v appears %d times", k, n)
		}
	}
}

func TestLayoutReference(t *testing.T) {
	tests := []struct {
		c    Coord
		want Key
	}{
		{Coord{2, 1}, D2},
		{Coord{2, 2}, D3},
		{Coord{3, 1}, D0},
		{Coord{2, 0}, D1},
		{Coord{3, 4}, Fn},
		{Coord{0, 3}, Backspace},
		{Coord{1, 4}, Sub},
	}
	for _, tt := range tests {
		if got := DefaultLayout.Lookup(tt.c); got != tt.want {
			t.Errorf("Lookup(%v) = %v, want %v", tt.c, got, tt.want)
		}
		if c, ok := DefaultLayout.Find(tt.want); !ok || c != tt.c {
			t.Errorf("Find(%v) = %v, %v, want %v", tt.want, c, ok, tt.c)
		}
	}
}

func TestParseKey(t *testing.T) {
	for k := Key(0); k < keyCount; k++ {
		got, err := ParseKey(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKey(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKey("Sqrt"); err == nil {
		t.Fatal("ParseKey(Sqrt): expected error")
	}
}

func TestLegend(t *testing.T) {
	if got := Add.Legend(); got != "+" {
		t.Fatalf("Add.Legend() = %q", got)
	}
	if got := Key(200).String(); got != "Key(200)" {
		t.Fatalf("Key(200).String() = %q", got)
	}
}
