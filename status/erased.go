package status

import "fmt"

// Erased is the fixed-capacity payload of a type-erased status code.
type Erased int64

// Erasable is the set of value types that can be stored in an Erased payload
// without loss: every integer kind, all of which fit in 64 bits and are
// trivially copyable. Erasing any other value type is rejected at compile
// time.
type Erasable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// restorer is implemented by the erased view of a domain; restore
// reinterprets a payload as the concrete value it was erased from.
type restorer interface {
	restore(p Erased) any
	concrete() Domain
}

// erasedDomain presents a TypedDomain[V] as a TypedDomain[Erased]. It keeps
// the concrete domain's identity.
type erasedDomain[V Erasable] struct {
	inner TypedDomain[V]
}

func (d erasedDomain[V]) ID() DomainID { return d.inner.ID() }
func (d erasedDomain[V]) Name() string { return d.inner.Name() }
func (d erasedDomain[V]) Failure(p Erased) bool { return d.inner.Failure(V(p)) }
func (d erasedDomain[V]) Generic(p Erased) Errc { return d.inner.Generic(V(p)) }
func (d erasedDomain[V]) Message(p Erased) string { return d.inner.Message(V(p)) }

func (d erasedDomain[V]) Equivalent(p Erased, other Code) bool {
	return d.inner.Equivalent(V(p), other)
}

func (d erasedDomain[V]) restore(p Erased) any { return V(p) }
func (d erasedDomain[V]) concrete() Domain { return d.inner }

// EraseCode returns the type-erased form of c. Erasing an already erased code
// returns it unchanged.
func EraseCode[V Erasable](c StatusCode[V]) StatusCode[Erased] {
	if e, ok := any(c).(StatusCode[Erased]); ok {
		return e
	}
	if c.domain == nil {
		return StatusCode[Erased]{}
	}
	return StatusCode[Erased]{domain: erasedDomain[V]{inner: c.domain}, value: Erased(c.value)}
}

// Erase wraps the erased form of c. It terminates the process if c is a
// success.
func Erase[V Erasable](c StatusCode[V]) Errored[Erased] { return FromCode(EraseCode(c)) }

// EraseErrored returns the erased form of e.
func EraseErrored[V Erasable](e Errored[V]) Errored[Erased] { return FromCode(EraseCode(e.code)) }

// UneraseCode reconstructs the concrete code c was erased from. Asking for
// Erased values returns c unchanged. Otherwise it returns ErrDomainMismatch
// if c was not erased from a domain of V values.
func UneraseCode[V Erasable](c StatusCode[Erased]) (StatusCode[V], error) {
	if c.domain == nil {
		return StatusCode[V]{}, nil
	}
	if same, ok := any(c).(StatusCode[V]); ok {
		return same, nil
	}
	r, ok := c.domain.(restorer)
	if !ok {
		return StatusCode[V]{}, fmt.Errorf("%w: %s is not an erased domain", ErrDomainMismatch, c.domain.Name())
	}
	d, ok := r.concrete().(TypedDomain[V])
	if !ok {
		return StatusCode[V]{}, fmt.Errorf("%w: %s does not hold %T values", ErrDomainMismatch, c.domain.Name(), *new(V))
	}
	return StatusCode[V]{domain: d, value: V(c.value)}, nil
}

// Unerase reconstructs the concrete errored code e was erased from. It
// returns ErrDomainMismatch if e was not erased from a domain of V values,
// and terminates the process if the reconstructed code is a success.
func Unerase[V Erasable](e Errored[Erased]) (Errored[V], error) {
	c, err := UneraseCode[V](e.code)
	if err != nil {
		return Errored[V]{}, err
	}
	return FromCode(c), nil
}
