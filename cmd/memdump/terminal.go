package main

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// stdoutTerminal reports once whether stdout is a terminal; memdump never
// redirects stdout after start.
var stdoutTerminal = sync.OnceValue(func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
})

// useColor resolves the color setting against stdout.
func useColor(setting string) bool {
	switch setting {
	case "always":
		return true
	case "never":
		return false
	default:
		return stdoutTerminal()
	}
}

// terminalRows returns the height of the terminal on stdout, or def.
func terminalRows(def int) int {
	if !stdoutTerminal() {
		return def
	}
	_, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || h <= 0 {
		return def
	}
	return h
}
