package fdlog

import (
	"os"

	"golang.org/x/term"
)

// colorEnabled decides colour for the current record. Precedence: a non-empty
// NO_COLOR environment variable, then DisableColor, then ForceColor, then a
// live terminal probe of the descriptor. The probe is re-evaluated per record
// because the descriptor can change at runtime.
func colorEnabled(opts *Options, fd int) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if opts.DisableColor {
		return false
	}
	if opts.ForceColor {
		return true
	}
	if fd < 0 {
		return false
	}
	return term.IsTerminal(fd)
}
