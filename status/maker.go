package status

// Maker is implemented by foreign error types that can express themselves as
// a status code with values of type V. Implementing it is all a third-party
// error type needs to do to plug into Make and MakeErased.
//
// StatusCode, Errored and Erased deliberately do not implement Maker, so a
// code is never "made" from itself.
type Maker[V any] interface {
	MakeStatusCode(args ...any) StatusCode[V]
}

// Make converts m into an errored code. It terminates the process if the code
// m makes is a success.
func Make[V any](m Maker[V], args ...any) Errored[V] {
	return FromCode(m.MakeStatusCode(args...))
}

// TryMake is Make returning ErrSuccess instead of terminating.
func TryMake[V any](m Maker[V], args ...any) (Errored[V], error) {
	return TryFromCode(m.MakeStatusCode(args...))
}

// MakeErased converts m into an erased errored code. It terminates the
// process if the code m makes is a success.
func MakeErased[V Erasable](m Maker[V], args ...any) Errored[Erased] {
	return Erase(m.MakeStatusCode(args...))
}
