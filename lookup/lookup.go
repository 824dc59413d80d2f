package lookup

import (
	"fmt"
	"strings"

	"github.com/kbukum/statuscode/errors"
	"github.com/kbukum/statuscode/status"
)

// Entry is one generic condition of the catalog.
type Entry struct {
	Errc       status.Errc      `json:"-"`
	Value      int              `json:"value"`
	Name       string           `json:"name"`
	Symbol     string           `json:"symbol,omitempty"`
	Message    string           `json:"message"`
	HTTPStatus int              `json:"http_status"`
	AppCode    errors.ErrorCode `json:"app_code"`
}

func entryFor(e status.Errc) Entry {
	code := errors.CodeFor(e)
	return Entry{
		Errc:       e,
		Value:      int(e),
		Name:       e.String(),
		Symbol:     e.Symbol(),
		Message:    e.Message(),
		HTTPStatus: errors.HTTPStatusFor(code),
		AppCode:    code,
	}
}

// Catalog lists every errored generic condition in ascending value order.
// Success is not part of the catalog.
func Catalog() []Entry {
	all := status.Errcs()
	out := make([]Entry, 0, len(all))
	for _, e := range all {
		if e == status.Success {
			continue
		}
		out = append(out, entryFor(e))
	}
	return out
}

// Resolve turns spec into an errored generic code. Condition names, POSIX
// symbols and values are tried first, then application error codes. The
// returned error is an *errors.AppError with code INVALID_INPUT; it wraps
// status.ErrSuccess when spec names the success condition.
func Resolve(spec string) (status.Errored[status.Errc], error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return status.Errored[status.Errc]{}, errors.MissingField("spec")
	}

	if e, err := status.ParseErrc(spec); err == nil {
		errored, err := status.TryFromCode(status.GenericCode(e))
		if err != nil {
			return errored, errors.InvalidInput("spec", fmt.Sprintf("%q is not an errored status code", spec)).WithCause(err)
		}
		return errored, nil
	}

	if code, ok := appCode(spec); ok {
		return status.TryMake[status.Errc](errors.New(code, string(code), errors.HTTPStatusFor(code)))
	}

	return status.Errored[status.Errc]{}, errors.InvalidInput("spec", fmt.Sprintf("unknown status code %q", spec))
}

func appCode(spec string) (errors.ErrorCode, bool) {
	want := errors.ErrorCode(strings.ToUpper(spec))
	for _, code := range errors.Codes() {
		if code == want {
			return code, true
		}
	}
	return "", false
}

// Description is a rendering of a status code of any domain.
type Description struct {
	Empty      bool             `json:"empty,omitempty"`
	Domain     string           `json:"domain,omitempty"`
	DomainID   string           `json:"domain_id,omitempty"`
	Code       string           `json:"code,omitempty"`
	Failure    bool             `json:"failure"`
	Message    string           `json:"message,omitempty"`
	Errc       string           `json:"errc,omitempty"`
	Symbol     string           `json:"symbol,omitempty"`
	HTTPStatus int              `json:"http_status,omitempty"`
	AppCode    errors.ErrorCode `json:"app_code,omitempty"`
	Retryable  bool             `json:"retryable,omitempty"`
}

// Describe renders c. Success codes describe their domain and message but
// carry no application mapping.
func Describe(c status.Code) Description {
	if c == nil || c.Empty() {
		return Description{Empty: true}
	}
	d := c.Domain()
	g := c.Generic()
	desc := Description{
		Domain:   d.Name(),
		DomainID: d.ID().String(),
		Code:     fmt.Sprint(c),
		Failure:  c.Failure(),
		Message:  c.Message(),
		Errc:     g.String(),
		Symbol:   g.Symbol(),
	}
	if desc.Failure {
		code := errors.CodeFor(g)
		desc.AppCode = code
		desc.HTTPStatus = errors.HTTPStatusFor(code)
		desc.Retryable = errors.IsRetryableCode(code)
	}
	return desc
}

// Comparison is the result of Compare.
type Comparison struct {
	A          Description `json:"a"`
	B          Description `json:"b"`
	Equivalent bool        `json:"equivalent"`
}

// Compare resolves both specs and reports whether they denote the same
// condition.
func Compare(a, b string) (Comparison, error) {
	ea, err := Resolve(a)
	if err != nil {
		return Comparison{}, fmt.Errorf("a: %w", err)
	}
	eb, err := Resolve(b)
	if err != nil {
		return Comparison{}, fmt.Errorf("b: %w", err)
	}
	return Comparison{
		A:          Describe(ea),
		B:          Describe(eb),
		Equivalent: status.Equal(ea, eb),
	}, nil
}
