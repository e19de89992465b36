package ui

import (
	"os"

	"github.com/fatih/color"
)

var (
	SuccessColor = color.New(color.FgGreen)
	ErrorColor   = color.New(color.FgRed)
)

// Success prints the confirmation line to stdout.
func Success(format string, a ...interface{}) {
	SuccessColor.Printf(format+"\n", a...)
}

// Error prints an error message to stderr.
func Error(format string, a ...interface{}) {
	ErrorColor.Fprintf(os.Stderr, format+"\n", a...)
}
