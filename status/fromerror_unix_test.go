//go:build unix

package status

import (
	"fmt"
	"syscall"
	"testing"
)

func TestFromError_Errno(t *testing.T) {
	tests := []struct {
		errno syscall.Errno
		want  Errc
	}{
		{syscall.ENOENT, NoSuchFileOrDirectory},
		{syscall.EACCES, PermissionDenied},
		{syscall.EAGAIN, ResourceUnavailableTryAgain},
		{syscall.ECONNREFUSED, ConnectionRefused},
		{syscall.ETIMEDOUT, TimedOut},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			e, ok := FromError(fmt.Errorf("dial: %w", tt.errno))
			if !ok {
				t.Fatal("expected errno to convert")
			}
			if e.Value() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, e.Value())
			}
		})
	}

	if _, ok := FromError(syscall.Errno(0)); ok {
		t.Error("errno 0 is a success and must not convert")
	}
}
