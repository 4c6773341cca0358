package hal

import "algcalc/keypad"

// startScanner moves s onto its own goroutine. A line failure ends the
// scanner only; the loop keeps running on whatever is already queued.
func startScanner(s *keypad.Scanner, log Logger) {
	go func(s *keypad.Scanner) {
		if err := s.Run(); err != nil {
			log.WriteLineString("scan: fatal: " + err.Error())
		}
	}(s)
}
