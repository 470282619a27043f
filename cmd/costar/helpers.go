package main

import (
	"os"

	"github.com/mattn/go-isatty"
)

// colorEnabled maps the output.color config value onto a concrete decision
// for the given stream. "auto" enables color only for real terminals.
func colorEnabled(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
}
