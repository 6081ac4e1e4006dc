package fdlog

import (
	"time"

	"pkt.systems/fdlog/ansi"
)

// writePrefix renders the record header: timestamp, level tag, thread id,
// call site and group. Each step is a bounded append; a step that clips marks
// the record truncated and the overall marker in finish covers it.
func writePrefix(b *lineBuffer, opts *Options, level Level, fd int, file string, line int, group string) {
	now := time.Now()
	if opts.UTC {
		now = now.UTC()
	}
	writeTimestamp(b, now)
	writeLevelTag(b, opts, level, fd)
	if !opts.OmitTID {
		writeTID(b, opts.ShortTID)
	}
	writeCallSite(b, opts, file, line)
	if group != "" {
		b.writeByte('[')
		b.writeString(group)
		b.writeString("] ")
	}
}

// writeTimestamp renders "YYYY-MM-DD HH:MM:SS.mmm ".
func writeTimestamp(b *lineBuffer, now time.Time) {
	year, month, day := now.Date()
	hour, minute, sec := now.Clock()
	ms := now.Nanosecond() / 1e6
	writeFourDigits(b, year)
	b.writeByte('-')
	writeTwoDigits(b, int(month))
	b.writeByte('-')
	writeTwoDigits(b, day)
	b.writeByte(' ')
	writeTwoDigits(b, hour)
	b.writeByte(':')
	writeTwoDigits(b, minute)
	b.writeByte(':')
	writeTwoDigits(b, sec)
	b.writeByte('.')
	writeThreeDigits(b, ms)
	b.writeByte(' ')
}

// writeLevelTag renders "[LEVEL]\t", wrapping only the level name in colour
// when the current descriptor supports it.
func writeLevelTag(b *lineBuffer, opts *Options, level Level, fd int) {
	b.writeByte('[')
	if colorEnabled(opts, fd) {
		b.writeString(levelColor(level))
		b.writeString(LevelString(level))
		b.writeString(ansi.Reset)
	} else {
		b.writeString(LevelString(level))
	}
	b.writeString("]\t")
}

func levelColor(level Level) string {
	p := ansi.Current()
	switch level {
	case TraceLevel:
		return p.Trace
	case DebugLevel:
		return p.Debug
	case InfoLevel:
		return p.Info
	case WarnLevel:
		return p.Warn
	case ErrorLevel:
		return p.Error
	case FatalLevel:
		return p.Fatal
	default:
		return ""
	}
}

func writeTID(b *lineBuffer, short bool) {
	tid := threadID()
	if short {
		b.writeString("(t#")
		writeHex24(b, uint32(tid)&0xFFFFFF)
	} else {
		b.writeString("(tid:")
		writeUint(b, tid)
	}
	b.writeString(") ")
}

// writeCallSite renders "<base:line> " or "<base> ".
func writeCallSite(b *lineBuffer, opts *Options, file string, line int) {
	b.writeByte('<')
	b.writeString(basename(file))
	if !opts.OmitLine {
		b.writeByte(':')
		writeUint(b, uint64(line))
	}
	b.writeString("> ")
}

// basename locates the last path separator by hand; both separators are
// accepted so records from cross-compiled call sites stay short.
func basename(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}

func writeTwoDigits(b *lineBuffer, v int) {
	b.writeByte(byte('0' + v/10))
	b.writeByte(byte('0' + v%10))
}

func writeThreeDigits(b *lineBuffer, v int) {
	b.writeByte(byte('0' + v/100))
	writeTwoDigits(b, v%100)
}

func writeFourDigits(b *lineBuffer, v int) {
	writeTwoDigits(b, v/100)
	writeTwoDigits(b, v%100)
}

func writeUint(b *lineBuffer, v uint64) {
	var tmp [20]byte
	i := len(tmp)
	for {
		i--
		tmp[i] = byte('0' + v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	b.write(tmp[i:])
}

const hexDigits = "0123456789abcdef"

func writeHex24(b *lineBuffer, v uint32) {
	for shift := 20; shift >= 0; shift -= 4 {
		b.writeByte(hexDigits[(v>>shift)&0xf])
	}
}
