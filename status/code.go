package status

import "fmt"

// Code is the domain-independent view of a status code, implemented by
// StatusCode and Errored for every value type. It is sealed: domains are the
// extension point, not codes.
type Code interface {
	// Domain returns the code's domain, or nil for an empty code.
	Domain() Domain
	// Empty reports whether the code holds no value.
	Empty() bool
	// Failure reports whether the code holds a value its domain classifies
	// as a failure. Empty codes are neither success nor failure.
	Failure() bool
	// Generic maps the code onto the generic domain, or Unknown.
	Generic() Errc
	// Message describes the code.
	Message() string
	// Equivalent reports whether the code and other denote the same logical
	// condition, possibly across domains.
	Equivalent(other Code) bool
	String() string

	domainEquivalent(other Code) bool
	payload() any
}

// StatusCode is a mutable status code holding at most one value of a
// TypedDomain. The zero value is empty.
type StatusCode[V any] struct {
	domain TypedDomain[V]
	value  V
}

var _ Code = StatusCode[Errc]{}

// New returns a code of domain d holding v.
func New[V any](d TypedDomain[V], v V) StatusCode[V] {
	return StatusCode[V]{domain: d, value: v}
}

// Emplace returns a code of domain d whose value is built by ctor from args.
func Emplace[V, A any](d TypedDomain[V], ctor func(args ...A) V, args ...A) StatusCode[V] {
	return StatusCode[V]{domain: d, value: ctor(args...)}
}

// EmplaceList is Emplace for value constructors taking a leading list.
func EmplaceList[V, T, A any](d TypedDomain[V], ctor func(list []T, args ...A) V, list []T, args ...A) StatusCode[V] {
	return StatusCode[V]{domain: d, value: ctor(list, args...)}
}

// Domain returns the domain, or nil if the code is empty.
func (c StatusCode[V]) Domain() Domain {
	if c.domain == nil {
		return nil
	}
	return c.domain
}

// TypedDomain returns the domain with its value type, or nil if empty.
func (c StatusCode[V]) TypedDomain() TypedDomain[V] { return c.domain }

// Value returns the held value. It is the zero V for an empty code.
func (c StatusCode[V]) Value() V { return c.value }

// Empty reports whether the code holds no value.
func (c StatusCode[V]) Empty() bool { return c.domain == nil }

// Success reports whether the code holds a value its domain classifies as a
// success.
func (c StatusCode[V]) Success() bool { return c.domain != nil && !c.domain.Failure(c.value) }

// Failure reports whether the code holds a value its domain classifies as a
// failure.
func (c StatusCode[V]) Failure() bool { return c.domain != nil && c.domain.Failure(c.value) }

// Clear empties the code.
func (c *StatusCode[V]) Clear() { *c = StatusCode[V]{} }

// Generic maps the code onto the generic domain.
func (c StatusCode[V]) Generic() Errc {
	if c.domain == nil {
		return Unknown
	}
	return c.domain.Generic(c.value)
}

// Message describes the code.
func (c StatusCode[V]) Message() string {
	if c.domain == nil {
		return "(empty)"
	}
	return c.domain.Message(c.value)
}

// Equivalent reports whether c and other denote the same logical condition.
func (c StatusCode[V]) Equivalent(other Code) bool { return equivalent(c, other) }

func (c StatusCode[V]) String() string {
	if c.domain == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s: %s", c.domain.Name(), c.domain.Message(c.value))
}

func (c StatusCode[V]) domainEquivalent(other Code) bool {
	return c.domain != nil && c.domain.Equivalent(c.value, other)
}

func (c StatusCode[V]) payload() any {
	if r, ok := c.domain.(restorer); ok {
		if p, ok := any(c.value).(Erased); ok {
			return r.restore(p)
		}
	}
	return c.value
}

// ValueAs returns the value held by c if it is a V, looking through erasure.
// Domains use it to read the other side of an equivalence check.
func ValueAs[V any](c Code) (V, bool) {
	var zero V
	if isEmpty(c) {
		return zero, false
	}
	switch x := c.(type) {
	case StatusCode[V]:
		return x.value, true
	case Errored[V]:
		return x.code.value, true
	}
	v, ok := c.payload().(V)
	return v, ok
}

func isEmpty(c Code) bool { return c == nil || c.Empty() }

// equivalent asks both domains directly, then retries each side against the
// other's generic mapping.
func equivalent(a, b Code) bool {
	if isEmpty(a) || isEmpty(b) {
		return isEmpty(a) && isEmpty(b)
	}
	if a.domainEquivalent(b) || b.domainEquivalent(a) {
		return true
	}
	if g := b.Generic(); g != Unknown && a.domainEquivalent(GenericCode(g)) {
		return true
	}
	if g := a.Generic(); g != Unknown && b.domainEquivalent(GenericCode(g)) {
		return true
	}
	return false
}
