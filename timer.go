package fdlog

import (
	"context"
	"sync"
	"time"
)

const timerGroup = "timer"

type timerSlot struct {
	key  uint64
	t0   time.Time
	used bool
}

// TimerSet is a fixed-capacity table of active interval timers keyed by a
// hash of their label. The zero value is ready to use. A TimerSet is not safe
// for concurrent use; give each goroutine its own, or carry one through a
// call tree with ContextWithTimers. The package-level StartTimer, StopTimer
// and Time share one mutex-guarded set.
type TimerSet struct {
	slots [MaxTimers]timerSlot
}

// Start begins timing label. Starting an already-active label restarts it in
// place. When all MaxTimers slots are occupied the start is dropped and a
// warn-level record reports the exhaustion.
func (t *TimerSet) Start(label string) {
	file, line := caller(2)
	t.start(file, line, label)
}

// Stop ends the timer for label and emits a debug-level record with the
// elapsed time, unit-scaled per the configured tier boundaries. Stopping a
// label that was never started emits a warn-level record and has no other
// effect.
func (t *TimerSet) Stop(label string) {
	file, line := caller(2)
	t.stop(file, line, label)
}

// Time starts a timer for label and returns the function that stops it,
// intended for defer so the stop runs on every exit path:
//
//	defer t.Time("rebuild index")()
func (t *TimerSet) Time(label string) func() {
	file, line := caller(2)
	t.start(file, line, label)
	return func() { t.stop(file, line, label) }
}

func (t *TimerSet) start(file string, line int, label string) {
	key := hashLabel(label)
	idx := -1
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].key == key {
			idx = i
			break
		}
	}
	if idx < 0 {
		for i := range t.slots {
			if !t.slots[i].used {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		report(WarnLevel, file, line, timerGroup, "no free timer slots (max %d)", MaxTimers)
		return
	}
	t.slots[idx] = timerSlot{key: key, t0: time.Now(), used: true}
}

func (t *TimerSet) stop(file string, line int, label string) {
	key := hashLabel(label)
	for i := range t.slots {
		if t.slots[i].used && t.slots[i].key == key {
			elapsed := time.Since(t.slots[i].t0)
			t.slots[i].used = false
			reportElapsed(file, line, uint64(elapsed), label)
			return
		}
	}
	report(WarnLevel, file, line, timerGroup, "stop for unknown label: %s", label)
}

// reportElapsed picks the display unit by thresholding the elapsed
// nanoseconds against the configured tier boundaries.
func reportElapsed(file string, line int, ns uint64, label string) {
	opts := options()
	switch {
	case ns < opts.TimerNsMax:
		report(DebugLevel, file, line, timerGroup, "[%d ns]: %s", ns, label)
	case ns < opts.TimerUsMax:
		report(DebugLevel, file, line, timerGroup, "[%.3f µs]: %s", float64(ns)/1e3, label)
	case ns < opts.TimerMsMax:
		report(DebugLevel, file, line, timerGroup, "[%.3f ms]: %s", float64(ns)/1e6, label)
	default:
		report(DebugLevel, file, line, timerGroup, "[%.6f s]: %s", float64(ns)/1e9, label)
	}
}

// hashLabel is FNV-1a, inlined so the start/stop path stays allocation free.
func hashLabel(label string) uint64 {
	h := uint64(14695981039346656037)
	for i := 0; i < len(label); i++ {
		h ^= uint64(label[i])
		h *= 1099511628211
	}
	return h
}

var (
	timerMu       sync.Mutex
	defaultTimers TimerSet
)

// StartTimer begins timing label on the shared package-level set.
func StartTimer(label string) {
	file, line := caller(2)
	timerMu.Lock()
	defaultTimers.start(file, line, label)
	timerMu.Unlock()
}

// StopTimer ends the timer for label on the shared package-level set.
func StopTimer(label string) {
	file, line := caller(2)
	timerMu.Lock()
	defaultTimers.stop(file, line, label)
	timerMu.Unlock()
}

// Time starts a timer on the shared package-level set and returns the
// function that stops it:
//
//	defer fdlog.Time("startup")()
func Time(label string) func() {
	file, line := caller(2)
	timerMu.Lock()
	defaultTimers.start(file, line, label)
	timerMu.Unlock()
	return func() {
		timerMu.Lock()
		defaultTimers.stop(file, line, label)
		timerMu.Unlock()
	}
}

type timersContextKey struct{}

// ContextWithTimers returns a child context carrying timers, giving a call
// tree its own goroutine-local timer table.
func ContextWithTimers(ctx context.Context, timers *TimerSet) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if timers == nil {
		return ctx
	}
	return context.WithValue(ctx, timersContextKey{}, timers)
}

// TimersFromContext extracts the TimerSet carried by ctx. When none is
// present it returns a fresh set; callers keep the returned pointer for the
// matching stops.
func TimersFromContext(ctx context.Context) *TimerSet {
	if ctx != nil {
		if timers, ok := ctx.Value(timersContextKey{}).(*TimerSet); ok && timers != nil {
			return timers
		}
	}
	return new(TimerSet)
}
