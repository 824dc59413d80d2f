//go:build linux

package status

import (
	"errors"
	"syscall"
)

// errnoCondition relies on Errc sharing the Linux errno numbering.
func errnoCondition(err error) (Errc, bool) {
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return Unknown, false
	}
	if e := Errc(errno); e.Known() {
		return e, true
	}
	return Unknown, true
}
