package status

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
)

// DomainID uniquely identifies a domain. Two domains with the same ID are the
// same domain, whatever their Go types.
type DomainID uint64

// String returns the ID as a fixed-width hex string.
func (id DomainID) String() string { return fmt.Sprintf("%#016x", uint64(id)) }

// DomainIDFromUUID derives a DomainID from a textual UUID by folding its two
// 64-bit halves together.
func DomainIDFromUUID(s string) (DomainID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return 0, fmt.Errorf("status: invalid domain uuid %q: %w", s, err)
	}
	hi := binary.BigEndian.Uint64(u[:8])
	lo := binary.BigEndian.Uint64(u[8:])
	return DomainID(hi ^ lo), nil
}

// MustDomainID is like DomainIDFromUUID but panics on a malformed UUID.
// Intended for package-level domain declarations.
func MustDomainID(s string) DomainID {
	id, err := DomainIDFromUUID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// Domain identifies a category of status codes.
type Domain interface {
	ID() DomainID
	Name() string
}

// TypedDomain is a Domain whose codes carry values of type V. It defines what
// success and equivalence mean for those values.
type TypedDomain[V any] interface {
	Domain
	// Failure reports whether v denotes a failure. Every value is either a
	// success or a failure.
	Failure(v V) bool
	// Equivalent reports whether v denotes the same logical condition as
	// other. It need only answer for the domains it knows about; the
	// comparison machinery also asks the other side and the generic domain.
	Equivalent(v V, other Code) bool
	// Generic maps v onto the generic domain, or Unknown.
	Generic(v V) Errc
	// Message returns a human readable description of v.
	Message(v V) string
}

// SameDomain reports whether a and b are the same domain. Two nil domains are
// the same.
func SameDomain(a, b Domain) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.ID() == b.ID()
}
