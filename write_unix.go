//go:build unix

package fdlog

import "golang.org/x/sys/unix"

// writeAll writes p fully to fd. Interrupted and partial writes are retried;
// any other failure is returned for accounting only.
func writeAll(fd int, p []byte) error {
	for len(p) > 0 {
		n, err := unix.Write(fd, p)
		if n > 0 {
			p = p[n:]
			continue
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		return unix.EIO
	}
	return nil
}

// syncFd forces a durable flush of fd. Descriptors that cannot fsync (pipes,
// sockets) report an error the emission path ignores.
func syncFd(fd int) error {
	return unix.Fsync(fd)
}
