package report

import (
	"fmt"
	"io"

	"golang.org/x/term"
)

// ColorMode selects when Text colors its status words.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ColorModes lists the accepted names, in ColorMode order.
var ColorModes = []string{"auto", "always", "never"}

// ParseColorMode converts a flag or config value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	for i, name := range ColorModes {
		if s == name {
			return ColorMode(i), nil
		}
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q: must be one of %v", s, ColorModes)
}

func (m ColorMode) String() string {
	if int(m) < len(ColorModes) {
		return ColorModes[m]
	}
	return fmt.Sprintf("ColorMode(%d)", int(m))
}

// enabled resolves the mode for a concrete writer. Auto colors only when w is
// a terminal.
func (m ColorMode) enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

type color interface {
	S(text string) string
}

type xtermColor struct {
	f uint8
	b uint8
}

var (
	green = xtermColor{f: 32, b: 1}
	red   = xtermColor{f: 31, b: 1}
)

func (c xtermColor) S(text string) string {
	return fmt.Sprintf("\x1b[%d;%dm%s\x1b[m", c.b, c.f, text)
}

type noColor struct{}

func (noColor) S(text string) string {
	return text
}
