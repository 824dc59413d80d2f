package status

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"testing"
)

type fooError struct{ f Foo }

func (e fooError) Error() string { return fmt.Sprintf("foo failed with %d", e.f) }

func (e fooError) MakeStatusCode(args ...any) StatusCode[Errc] { return e.f.MakeStatusCode(args...) }

func TestFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Errc
		wantOK bool
	}{
		{"nil", nil, Unknown, false},
		{"plain", errors.New("boom"), Unknown, false},
		{"errored code", fmt.Errorf("ctx: %w", FromErrc(BrokenPipe)), BrokenPipe, true},
		{"foreign code", FromValue(foos, FooOverflow), ValueTooLarge, true},
		{"unmapped foreign code", FromValue(foos, FooUnmapped), Unknown, true},
		{"maker", fmt.Errorf("ctx: %w", fooError{FooBadInput}), InvalidArgument, true},
		{"maker success", fooError{FooOK}, Unknown, false},
		{"errc", fmt.Errorf("ctx: %w", NoSpaceOnDevice), NoSpaceOnDevice, true},
		{"errc success", Success, Unknown, false},
		{"deadline", context.DeadlineExceeded, TimedOut, true},
		{"canceled", fmt.Errorf("ctx: %w", context.Canceled), OperationCanceled, true},
		{"not exist", fs.ErrNotExist, NoSuchFileOrDirectory, true},
		{"exist", fs.ErrExist, FileExists, true},
		{"permission", fs.ErrPermission, PermissionDenied, true},
		{"closed", fs.ErrClosed, BadFileDescriptor, true},
		{"unsupported", errors.ErrUnsupported, NotSupported, true},
		{"unexpected eof", io.ErrUnexpectedEOF, IOError, true},
		{"closed pipe", io.ErrClosedPipe, BrokenPipe, true},
		{"os deadline", os.ErrDeadlineExceeded, TimedOut, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := FromError(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("FromError ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				if !e.Empty() {
					t.Error("expected empty code when conversion fails")
				}
				return
			}
			if e.Value() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, e.Value())
			}
			if !e.Failure() {
				t.Error("converted code must be a failure")
			}
		})
	}
}

func TestFromError_PathError(t *testing.T) {
	_, err := os.Open("/definitely/not/here")
	e, ok := FromError(err)
	if !ok {
		t.Fatalf("expected %v to convert", err)
	}
	if !EqualErrc(e, NoSuchFileOrDirectory) {
		t.Errorf("expected NoSuchFileOrDirectory, got %v", e.Value())
	}
}

// wrappedFooError is a Maker that also carries a cause.
type wrappedFooError struct {
	f     Foo
	cause error
}

func (e wrappedFooError) Error() string { return fmt.Sprintf("foo failed with %d: %v", e.f, e.cause) }

func (e wrappedFooError) Unwrap() error { return e.cause }

func (e wrappedFooError) MakeStatusCode(args ...any) StatusCode[Errc] { return e.f.MakeStatusCode(args...) }

func TestFromError_OutermostLinkWins(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		want   Errc
		wantOK bool
	}{
		{"maker over code", wrappedFooError{FooBadInput, FromErrc(TimedOut)}, InvalidArgument, true},
		{"maker over errc", fmt.Errorf("ctx: %w", wrappedFooError{FooOverflow, NoSpaceOnDevice}), ValueTooLarge, true},
		{"errc over code", fmt.Errorf("%w: %w", PermissionDenied, FromErrc(BrokenPipe)), PermissionDenied, true},
		{"maker over sentinel", wrappedFooError{FooBadInput, fs.ErrNotExist}, InvalidArgument, true},
		{"succeeding maker defers inward", wrappedFooError{FooOK, FromErrc(TimedOut)}, TimedOut, true},
		{"join in order", errors.Join(errors.New("boom"), NoSpaceOnDevice, FromErrc(TimedOut)), NoSpaceOnDevice, true},
		{"join depth first", errors.Join(fmt.Errorf("a: %w", wrappedFooError{FooBadInput, FromErrc(TimedOut)}), BrokenPipe), InvalidArgument, true},
		{"join falls back to sentinel", errors.Join(errors.New("boom"), fs.ErrExist), FileExists, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ok := FromError(tt.err)
			if ok != tt.wantOK {
				t.Fatalf("FromError ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && e.Value() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, e.Value())
			}
		})
	}
}

func TestErrored_IsMaker(t *testing.T) {
	err := fmt.Errorf("ctx: %w", FromErrc(InvalidArgument))
	if !errors.Is(err, fooError{FooBadInput}) {
		t.Error("expected errored code to match an equivalent maker")
	}
	if errors.Is(err, fooError{FooOK}) {
		t.Error("a maker of a success never matches")
	}
	if !errors.Is(InvalidArgument, fooError{FooBadInput}) {
		t.Error("expected Errc to match an equivalent maker")
	}
}
