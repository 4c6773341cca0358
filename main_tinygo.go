//go:build tinygo

package main

import (
	"algcalc/app"
	"algcalc/hal"
)

func main() {
	h := hal.New()
	if err := app.Run(h); err != nil {
		app.Fatal(h, err)
	}
	select {}
}
