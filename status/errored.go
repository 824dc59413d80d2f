package status

import (
	"errors"
	"fmt"
)

var (
	// ErrSuccess is returned by the Try constructors when the code would
	// represent success.
	ErrSuccess = errors.New("status: errored status code cannot hold a success value")
	// ErrDomainMismatch is returned when an erased code is reconstructed as a
	// domain it was not erased from.
	ErrDomainMismatch = errors.New("status: erased code belongs to a different domain")
)

// Errored is a status code that is never a success. Its zero value is the
// empty code, which is not a success either.
//
// Constructors come in two kinds. FromCode, FromValue, FromErrc, InPlace,
// InPlaceList, Make, Erase, EraseErrored and MakeErased treat a success value
// as a programming error and terminate the process (see ExitCodeViolation).
// TryFromCode and TryFromValue return ErrSuccess instead. Unerase returns
// ErrDomainMismatch for a code of another domain and terminates only on a
// success value.
//
// An Errored is immutable: it exposes no way to clear or replace its value.
// Compare codes with Equal or Equivalent, not ==, which compares
// representations.
type Errored[V any] struct {
	code StatusCode[V]
}

var (
	_ Code  = Errored[Errc]{}
	_ error = Errored[Errc]{}
)

// FromCode wraps c. It terminates the process if c is a success.
func FromCode[V any](c StatusCode[V]) Errored[V] {
	if c.Success() {
		violation(c)
	}
	return Errored[V]{code: c}
}

// TryFromCode wraps c, or returns ErrSuccess if c is a success.
func TryFromCode[V any](c StatusCode[V]) (Errored[V], error) {
	if c.Success() {
		return Errored[V]{}, fmt.Errorf("%w: %s", ErrSuccess, c)
	}
	return Errored[V]{code: c}, nil
}

// FromValue returns the errored code of domain d holding v. It terminates the
// process if d classifies v as a success.
func FromValue[V any](d TypedDomain[V], v V) Errored[V] { return FromCode(New(d, v)) }

// TryFromValue is FromValue returning ErrSuccess instead of terminating.
func TryFromValue[V any](d TypedDomain[V], v V) (Errored[V], error) {
	return TryFromCode(New(d, v))
}

// InPlace builds the value with ctor(args...) and wraps it. It terminates the
// process if the value is a success.
func InPlace[V, A any](d TypedDomain[V], ctor func(args ...A) V, args ...A) Errored[V] {
	return FromCode(Emplace(d, ctor, args...))
}

// InPlaceList builds the value with ctor(list, args...) and wraps it. It
// terminates the process if the value is a success.
func InPlaceList[V, T, A any](d TypedDomain[V], ctor func(list []T, args ...A) V, list []T, args ...A) Errored[V] {
	return FromCode(EmplaceList(d, ctor, list, args...))
}

// Value returns a copy of the held value.
func (e Errored[V]) Value() V { return e.code.value }

// Code returns a copy of the underlying status code. Changing the copy does
// not change e.
func (e Errored[V]) Code() StatusCode[V] { return e.code }

// Domain returns the domain, or nil if e is empty.
func (e Errored[V]) Domain() Domain { return e.code.Domain() }

// TypedDomain returns the domain with its value type, or nil if e is empty.
func (e Errored[V]) TypedDomain() TypedDomain[V] { return e.code.domain }

// Empty reports whether e holds no value.
func (e Errored[V]) Empty() bool { return e.code.Empty() }

// Failure reports whether e holds a value. A non-empty Errored is always a
// failure.
func (e Errored[V]) Failure() bool { return e.code.Failure() }

// Generic maps e onto the generic domain.
func (e Errored[V]) Generic() Errc { return e.code.Generic() }

// Message describes e.
func (e Errored[V]) Message() string { return e.code.Message() }

// Equivalent reports whether e and other denote the same logical condition.
func (e Errored[V]) Equivalent(other Code) bool { return equivalent(e, other) }

func (e Errored[V]) String() string { return e.code.String() }

// Error implements error.
func (e Errored[V]) Error() string { return e.code.Message() }

// Is reports whether target is a Code, an Errc or a Maker of generic codes
// equivalent to e, so that errors.Is matches across domains.
func (e Errored[V]) Is(target error) bool {
	switch t := target.(type) {
	case Errc:
		return EqualErrc(e, t)
	case Code:
		return Equal(e, t)
	case Maker[Errc]:
		return makerEqual(e, t)
	}
	return false
}

func makerEqual(c Code, m Maker[Errc]) bool {
	made := m.MakeStatusCode()
	return made.Failure() && Equal(c, made)
}

func (e Errored[V]) domainEquivalent(other Code) bool { return e.code.domainEquivalent(other) }

func (e Errored[V]) payload() any { return e.code.payload() }
