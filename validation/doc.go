// Package validation validates settings and request input.
//
// Failures are reported as an *errors.AppError with code INVALID_INPUT and
// a "fields" detail, which maps to the generic InvalidArgument condition.
//
// # Struct Tag Validation
//
//	type HTTP struct {
//	    Addr string `json:"addr" validate:"required,hostname_port"`
//	}
//	err := validation.Validate(cfg)
//
// The "errc" tag accepts strings that name a generic condition:
//
//	Ignore []string `json:"ignore" validate:"dive,errc"`
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("a", a).Errc("a", a)
//	err := v.Validate()
package validation
