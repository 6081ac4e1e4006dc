//go:build !linux && !windows

package fdlog

import "os"

// No portable per-thread identifier on these platforms; the process id keeps
// the prefix shape stable.
func threadID() uint64 {
	return uint64(os.Getpid())
}
