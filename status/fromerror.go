package status

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// sentinels maps standard library sentinel errors to generic conditions.
// Order matters: more specific sentinels come first.
var sentinels = []struct {
	err  error
	errc Errc
}{
	{os.ErrDeadlineExceeded, TimedOut},
	{context.DeadlineExceeded, TimedOut},
	{context.Canceled, OperationCanceled},
	{fs.ErrNotExist, NoSuchFileOrDirectory},
	{fs.ErrExist, FileExists},
	{fs.ErrPermission, PermissionDenied},
	{fs.ErrInvalid, InvalidArgument},
	{fs.ErrClosed, BadFileDescriptor},
	{errors.ErrUnsupported, NotSupported},
	{io.ErrUnexpectedEOF, IOError},
	{io.ErrShortWrite, IOError},
	{io.ErrClosedPipe, BrokenPipe},
}

// FromError converts err into an errored generic code. It walks the error
// tree one link at a time, outermost first and in the order errors.As visits
// joined errors, and stops at the first link that is a status Code, a Maker
// of generic codes or an Errc. Failing that it tries a syscall.Errno on unix
// platforms and then the standard library sentinels. It returns false if err
// is nil, nothing in the chain converts, or the conversion is a success.
func FromError(err error) (Errored[Errc], bool) {
	if err == nil {
		return Errored[Errc]{}, false
	}

	if e, ok, found := chainCondition(err); found {
		return e, ok
	}

	if e, ok := errnoCondition(err); ok {
		if e == Success {
			return Errored[Errc]{}, false
		}
		return FromErrc(e), true
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return FromErrc(s.errc), true
		}
	}
	return Errored[Errc]{}, false
}

// chainCondition reports found once some link of err decides the condition.
func chainCondition(err error) (e Errored[Errc], ok, found bool) {
	for err != nil {
		if e, ok, found := linkCondition(err); found {
			return e, ok, true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				if e, ok, found := chainCondition(inner); found {
					return e, ok, true
				}
			}
			return Errored[Errc]{}, false, false
		default:
			return Errored[Errc]{}, false, false
		}
	}
	return Errored[Errc]{}, false, false
}

// linkCondition inspects err itself without unwrapping it. A Maker whose code
// is empty or a success leaves the decision to the links it wraps.
func linkCondition(err error) (e Errored[Errc], ok, found bool) {
	switch v := err.(type) {
	case Code:
		if v.Empty() {
			return Errored[Errc]{}, false, false
		}
		if e, ok := v.(Errored[Errc]); ok {
			return e, true, true
		}
		if g := v.Generic(); g != Unknown && g != Success {
			return FromErrc(g), true, true
		}
		if v.Failure() {
			return FromErrc(Unknown), true, true
		}
		return Errored[Errc]{}, false, true
	case Maker[Errc]:
		if e, err := TryFromCode(v.MakeStatusCode()); err == nil && !e.Empty() {
			return e, true, true
		}
		return Errored[Errc]{}, false, false
	case Errc:
		if v == Success {
			return Errored[Errc]{}, false, true
		}
		return FromErrc(v), true, true
	}
	return Errored[Errc]{}, false, false
}
