package buildinfo

import "fmt"

// Name is the product name shown in the boot line and window title.
const Name = "algcalc"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns the release version, falling back to the commit.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long identifies the firmware for the boot log.
func Long() string {
	v := Version
	if v == "" {
		v = "dev"
	}
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, v, orUnknown(Commit), orUnknown(Date))
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
