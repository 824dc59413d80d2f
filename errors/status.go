package errors

import (
	"github.com/kbukum/statuscode/status"
)

var _ status.Maker[status.Errc] = (*AppError)(nil)

// MakeStatusCode expresses e as a generic status code, which lets an
// AppError be passed to status.Make and found by status.FromError. When the
// cause converts to a condition that maps back onto e.Code, that finer
// condition is kept. A nil AppError makes the empty code.
func (e *AppError) MakeStatusCode(...any) status.StatusCode[status.Errc] {
	if e == nil {
		return status.StatusCode[status.Errc]{}
	}
	if e.Cause != nil {
		if c, ok := status.FromError(e.Cause); ok && CodeFor(c.Value()) == e.Code {
			return c.Code()
		}
	}
	return status.GenericCode(ErrcFor(e.Code))
}

// Status returns the generic failure e stands for.
func (e *AppError) Status() status.Errored[status.Errc] {
	return status.FromCode(e.MakeStatusCode())
}

// Is matches target by meaning rather than identity: another AppError with
// the same code, or any status code or Errc equivalent to e's status.
func (e *AppError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch t := target.(type) {
	case *AppError:
		return t != nil && t.Code == e.Code
	case status.Errc:
		return status.EqualErrc(e.Status(), t)
	case status.Code:
		return status.Equal(e.Status(), t)
	}
	return false
}

// FromStatus renders c as an AppError. The code is chosen from c's generic
// mapping; the message is c's own. It returns nil for an empty code or a
// success.
func FromStatus(c status.Code) *AppError {
	if c == nil || c.Empty() || !c.Failure() {
		return nil
	}
	generic := c.Generic()
	code := CodeFor(generic)
	e := newCode(code, c.Message(), map[string]any{
		"domain":    c.Domain().Name(),
		"domain_id": c.Domain().ID().String(),
		"errc":      generic.String(),
	})
	if err, ok := c.(error); ok {
		e.Cause = err
	}
	return e
}

// Wrap converts err into an AppError. Errors that already are, or wrap, an
// AppError are returned as such; errors that convert to a status code are
// rendered with FromStatus; anything else becomes Internal.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	if e, ok := status.FromError(err); ok {
		return FromStatus(e).WithCause(err)
	}
	return Internal(err)
}
