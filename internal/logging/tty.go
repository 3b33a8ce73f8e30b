package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// ColorMode controls whether ANSI colors are emitted.
type ColorMode string

const (
	// ColorAuto enables color only for terminals that support it.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces color regardless of the writer.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// ValidColorMode reports whether s names a known ColorMode.
func ValidColorMode(s string) bool {
	switch ColorMode(s) {
	case ColorAuto, ColorAlways, ColorNever:
		return true
	}
	return false
}

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

// UseColor resolves mode against w. ColorAuto defers to SupportsColor.
func UseColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return SupportsColor(w)
	}
}

func supportsColor(_ io.Writer, isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}

	return isTTY
}
