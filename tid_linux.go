//go:build linux

package fdlog

import "golang.org/x/sys/unix"

// threadID returns the kernel thread id of the OS thread running the calling
// goroutine.
func threadID() uint64 {
	return uint64(unix.Gettid())
}
