package fdlog

// emit composes one record in a pooled buffer and writes it to the current
// descriptor. The caller has already passed the threshold gate; nothing here
// blocks except the write mutex, and nothing here fails loudly: a write error
// only bumps the dropped-write counter.
func emit(level Level, file string, line int, group, format string, args []any) {
	opts := options()
	fd := Fd()
	b := acquireLineBuffer()
	writePrefix(b, opts, level, fd, file, line, group)
	b.appendf(format, args...)
	n := b.finish()

	writeMu.Lock()
	err := writeAll(fd, b.buf[:n])
	if level == FatalLevel {
		// Fatal records must survive immediate process termination.
		_ = syncFd(fd)
	}
	writeMu.Unlock()

	if err != nil {
		droppedWrites.Add(1)
	}
	releaseLineBuffer(b)
}

// report emits on behalf of the timer subsystem with an already-resolved call
// site.
func report(level Level, file string, line int, group, format string, args ...any) {
	if level < GetLevel() {
		return
	}
	emit(level, file, line, group, format, args)
}
