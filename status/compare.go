package status

// Equal reports whether a and b denote the same logical condition. Either
// side may be a StatusCode or an Errored of any domain; the result does not
// depend on the order of the operands.
func Equal(a, b Code) bool { return equivalent(a, b) }

// NotEqual is the negation of Equal.
func NotEqual(a, b Code) bool { return !equivalent(a, b) }

// EqualErrc reports whether a is equivalent to the generic code e.
func EqualErrc(a Code, e Errc) bool { return equivalent(a, GenericCode(e)) }

// ErrcEqual is EqualErrc with the operands swapped.
func ErrcEqual(e Errc, a Code) bool { return equivalent(GenericCode(e), a) }

// NotEqualErrc is the negation of EqualErrc.
func NotEqualErrc(a Code, e Errc) bool { return !EqualErrc(a, e) }

// ErrcNotEqual is the negation of ErrcEqual.
func ErrcNotEqual(e Errc, a Code) bool { return !ErrcEqual(e, a) }
