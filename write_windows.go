//go:build windows

package fdlog

import (
	"io"

	"golang.org/x/sys/windows"
)

// On Windows the descriptor is the handle value, matching os.File.Fd.

func writeAll(fd int, p []byte) error {
	h := windows.Handle(fd)
	for len(p) > 0 {
		var done uint32
		if err := windows.WriteFile(h, p, &done, nil); err != nil {
			return err
		}
		if done == 0 {
			return io.ErrShortWrite
		}
		p = p[done:]
	}
	return nil
}

func syncFd(fd int) error {
	return windows.FlushFileBuffers(windows.Handle(fd))
}
