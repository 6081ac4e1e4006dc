// Package fdlog is an embeddable logging core that turns leveled, optionally
// grouped log calls into single-line text records written atomically to a raw
// file descriptor. It favours bounded memory and minimal branching: every
// record is composed in a fixed-capacity pooled buffer, truncated with a
// marker when it does not fit, and always newline terminated.
//
// # Design overview
//
//   - Process-wide state is two relaxed atomic cells: the active level
//     threshold and the target descriptor. Either can change at any time from
//     any goroutine; each is independently coherent.
//   - Suppressed calls return before touching a buffer or looking up the call
//     site, so a raised threshold keeps disabled statements cheap.
//   - Each record carries a millisecond timestamp, a colour-aware [LEVEL]
//     tag, the OS thread id, the calling file and line, and an optional
//     free-form group tag.
//   - The write to the descriptor is the only shared critical section: one
//     mutex, one full write (retried on EINTR), and an fsync when the record
//     is fatal. Records from concurrent goroutines never interleave at the
//     byte level.
//   - Write failures are swallowed and counted (DroppedWrites); the logging
//     path never raises into the host program.
//
// # Usage
//
//	fdlog.SetLevel(fdlog.TraceLevel)
//	fdlog.Info("listening on %s", addr)
//	fdlog.WarnGroup("startup", "low entropy seed; continuing anyway")
//
// Interval timers pair a label with a monotonic start time and report the
// elapsed duration through the same pipeline at debug level:
//
//	defer fdlog.Time("rebuild index")()
//
// A TimerSet holds at most MaxTimers concurrent labels in fixed slots and is
// meant to be goroutine-local; ContextWithTimers carries one through a call
// tree. The package-level timer functions share one mutex-guarded set.
//
// Colour output wraps only the level name and is decided per record against
// the current descriptor: a non-empty NO_COLOR environment variable forces it
// off, Options.ForceColor forces it on, otherwise the descriptor is probed
// for a terminal. The ansi subpackage exposes the palette.
package fdlog
