// Package status provides status codes that carry a domain-specific value,
// compare across domains, and can be type-erased into a fixed-size payload.
//
// A StatusCode[V] holds at most one value of a TypedDomain[V]. The domain
// decides whether the value is a success or a failure, how it maps onto the
// generic POSIX-style conditions (Errc), and which codes of other domains it
// is equivalent to.
//
// Errored[V] is the variant that never holds a success. Building one from a
// success value is a programming error: the checked constructors log the
// offending code and terminate the process with ExitCodeViolation. Use
// TryFromCode or TryFromValue when a success is an expected input.
//
//	e := status.FromErrc(status.InvalidArgument)
//	if status.EqualErrc(e, status.InvalidArgument) {
//		// handle bad input
//	}
//
// Foreign error types join in by implementing Maker:
//
//	func (f Foo) MakeStatusCode(args ...any) status.StatusCode[status.Errc] {
//		return status.GenericCode(status.InvalidArgument)
//	}
//
//	e := status.Make[status.Errc](FooBadInput)
//
// Codes with integer values can be erased into Errored[Erased] and
// reconstructed later with Unerase. Erasure keeps the domain identity, so an
// erased code still compares equal to its concrete form.
package status
