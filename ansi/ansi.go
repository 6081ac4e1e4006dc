// Package ansi provides the ANSI escape sequences and the per-level palette
// used by fdlog's colourized [LEVEL] tags. The palette can be swapped at
// runtime via SetPalette without touching fdlog internals.
package ansi

import "sync/atomic"

// Reset is the ANSI escape code that clears all terminal styling; the
// remaining constants expose the color sequences fdlog uses by default.
const (
	Reset   = "\x1b[0m"
	Faint   = "\x1b[90m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
)

// Palette maps record severities to the escape sequence wrapping the level
// name. Empty fields fall back to the current palette on SetPalette.
type Palette struct {
	Trace string
	Debug string
	Info  string
	Warn  string
	Error string
	Fatal string
}

// PaletteDefault is the palette fdlog starts with.
var PaletteDefault = Palette{
	Trace: Faint,
	Debug: Cyan,
	Info:  Green,
	Warn:  Yellow,
	Error: Red,
	Fatal: Magenta,
}

var current atomic.Pointer[Palette]

func init() {
	p := PaletteDefault
	current.Store(&p)
}

// SetPalette replaces the active palette. Empty fields keep their current
// value, so partial palettes compose.
//
//	snap := ansi.Snapshot()
//	defer ansi.SetPalette(snap)
//	ansi.SetPalette(ansi.Palette{Error: ansi.Magenta})
func SetPalette(palette Palette) {
	next := *current.Load()
	if palette.Trace != "" {
		next.Trace = palette.Trace
	}
	if palette.Debug != "" {
		next.Debug = palette.Debug
	}
	if palette.Info != "" {
		next.Info = palette.Info
	}
	if palette.Warn != "" {
		next.Warn = palette.Warn
	}
	if palette.Error != "" {
		next.Error = palette.Error
	}
	if palette.Fatal != "" {
		next.Fatal = palette.Fatal
	}
	current.Store(&next)
}

// Snapshot returns the current palette values.
func Snapshot() Palette { return *current.Load() }

// Current returns the active palette. The returned pointer is read-only;
// replace the palette through SetPalette.
func Current() *Palette { return current.Load() }
