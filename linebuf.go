package fdlog

import (
	"fmt"
	"sync"
)

// truncMarker replaces the tail of a record that outgrew the buffer.
const truncMarker = "..."

// lineBuffer is the fixed-capacity scratch a single record is composed in.
// One emitter owns one instance for the duration of one call; instances are
// pooled, never shared, and never grow.
type lineBuffer struct {
	buf   [LineMax]byte
	n     int
	trunc bool
}

var lineBufferPool = sync.Pool{
	New: func() any { return new(lineBuffer) },
}

func acquireLineBuffer() *lineBuffer {
	b := lineBufferPool.Get().(*lineBuffer)
	b.n = 0
	b.trunc = false
	return b
}

func releaseLineBuffer(b *lineBuffer) { lineBufferPool.Put(b) }

func (b *lineBuffer) bytes() []byte { return b.buf[:b.n] }

func (b *lineBuffer) writeByte(c byte) {
	if b.n >= LineMax {
		b.trunc = true
		return
	}
	b.buf[b.n] = c
	b.n++
}

func (b *lineBuffer) writeString(s string) {
	k := copy(b.buf[b.n:], s)
	b.n += k
	if k < len(s) {
		b.trunc = true
	}
}

func (b *lineBuffer) write(p []byte) {
	k := copy(b.buf[b.n:], p)
	b.n += k
	if k < len(p) {
		b.trunc = true
	}
}

// appendf formats into the remaining space. When the formatted content does
// not fit, whatever fits is kept and the record is marked truncated; finish
// places the marker.
func (b *lineBuffer) appendf(format string, args ...any) {
	avail := LineMax - b.n
	if avail <= 0 {
		b.trunc = true
		return
	}
	out := fmt.Appendf(b.buf[b.n:b.n], format, args...)
	if len(out) >= avail {
		b.n += copy(b.buf[b.n:LineMax-1], out)
		b.trunc = true
		return
	}
	// When it fit, out still aliases buf and the copy is a no-op move.
	copy(b.buf[b.n:], out)
	b.n += len(out)
}

// finish seals the record: a truncated record gets the marker (room for
// marker and newline is reclaimed from content), and every record ends in
// exactly one newline. Returns the byte count to emit.
func (b *lineBuffer) finish() int {
	if b.trunc {
		const room = len(truncMarker) + 1
		if b.n > LineMax-1-room {
			b.n = LineMax - 1 - room
		}
		b.n += copy(b.buf[b.n:], truncMarker)
	}
	if b.n == 0 || b.buf[b.n-1] != '\n' {
		if b.n < LineMax {
			b.buf[b.n] = '\n'
			b.n++
		} else {
			// Exactly full and no newline: trade the last content byte.
			b.buf[LineMax-1] = '\n'
		}
	}
	return b.n
}
