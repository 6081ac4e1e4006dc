package fdlog

import (
	"os"
	"sync"
	"sync/atomic"
)

const (
	// LineMax is the fixed capacity of one record buffer. Content beyond it is
	// truncated; an emitted line never exceeds it.
	LineMax = 1024

	// MaxTimers is the number of concurrent distinct labels a TimerSet holds.
	MaxTimers = 16
)

// Options is the process-wide rendering configuration. It is applied as one
// snapshot via Configure and read on every emission; the zero value of a
// field falls back as documented per field.
type Options struct {
	// OmitTID drops the (tid:NNN) block from the prefix.
	OmitTID bool

	// ShortTID renders the thread id as (t#xxxxxx), the low 24 bits in hex.
	ShortTID bool

	// OmitLine drops the :line part of the <file:line> call-site block.
	OmitLine bool

	// UTC renders timestamps in UTC instead of local time.
	UTC bool

	// DisableColor forces colour escape codes off regardless of terminal
	// detection. The NO_COLOR environment variable has the same effect and
	// takes precedence over everything below.
	DisableColor bool

	// ForceColor bypasses terminal detection and emits colour even when the
	// descriptor is not a TTY. Useful for tests and forced-colour logs.
	ForceColor bool

	// TimerNsMax, TimerUsMax and TimerMsMax are the unit tier boundaries for
	// timer reports, in nanoseconds. Elapsed times below TimerNsMax render in
	// ns, below TimerUsMax in µs, below TimerMsMax in ms, otherwise in
	// seconds. Zero values fall back to 1e3, 1e6 and 1e9.
	TimerNsMax uint64
	TimerUsMax uint64
	TimerMsMax uint64
}

// DefaultOptions returns the configuration fdlog starts with: full decimal
// thread id, call site with line number, local time, colour by terminal
// detection, and 1µs/1ms/1s timer tiers.
func DefaultOptions() Options {
	return Options{
		TimerNsMax: 1_000,
		TimerUsMax: 1_000_000,
		TimerMsMax: 1_000_000_000,
	}
}

var (
	levelState atomic.Int32
	fdState    atomic.Int64
	optState   atomic.Pointer[Options]

	// writeMu serializes the descriptor write only. Configuration cells are
	// independent atomics and record buffers are never shared.
	writeMu sync.Mutex

	droppedWrites atomic.Uint64
)

func init() {
	levelState.Store(int32(InfoLevel))
	fdState.Store(int64(os.Stderr.Fd()))
	opts := DefaultOptions()
	optState.Store(&opts)
}

// SetLevel sets the active severity threshold. Safe to call from any
// goroutine at any time.
func SetLevel(level Level) { levelState.Store(int32(level)) }

// GetLevel returns the active severity threshold.
func GetLevel() Level { return Level(levelState.Load()) }

// SetFd redirects output to an already-open writable descriptor. Ownership
// stays with the caller; fdlog never closes it. Level and descriptor are
// independently coherent: a reader observing one change may not yet observe
// the other.
func SetFd(fd int) { fdState.Store(int64(fd)) }

// Fd returns the current target descriptor.
func Fd() int { return int(fdState.Load()) }

// SetOutput points the logger at f's descriptor. The file stays owned by the
// caller.
func SetOutput(f *os.File) {
	if f != nil {
		SetFd(int(f.Fd()))
	}
}

// Configure replaces the rendering configuration. Zero timer tiers are filled
// with the defaults so a partially populated Options stays usable.
func Configure(opts Options) {
	def := DefaultOptions()
	if opts.TimerNsMax == 0 {
		opts.TimerNsMax = def.TimerNsMax
	}
	if opts.TimerUsMax == 0 {
		opts.TimerUsMax = def.TimerUsMax
	}
	if opts.TimerMsMax == 0 {
		opts.TimerMsMax = def.TimerMsMax
	}
	optState.Store(&opts)
}

func options() *Options { return optState.Load() }

// DroppedWrites returns the number of records lost to write failures. The
// emission path never surfaces those errors; this counter is the only trace
// they leave.
func DroppedWrites() uint64 { return droppedWrites.Load() }
