//go:build !unix

package status

// errnoCondition has no errno numbering to translate on this platform.
func errnoCondition(error) (Errc, bool) { return Unknown, false }
