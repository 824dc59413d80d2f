package status

// GenericDomainID is the identity of the generic domain.
const GenericDomainID DomainID = 0x746d6354f4f733e9

type genericDomain struct{}

var generic TypedDomain[Errc] = genericDomain{}

// GenericDomain returns the built-in domain of POSIX-style generic codes.
func GenericDomain() TypedDomain[Errc] { return generic }

func (genericDomain) ID() DomainID { return GenericDomainID }
func (genericDomain) Name() string { return "generic domain" }
func (genericDomain) Failure(v Errc) bool { return v != Success }
func (genericDomain) Generic(v Errc) Errc { return v }
func (genericDomain) Message(v Errc) string { return v.Message() }

func (genericDomain) Equivalent(v Errc, other Code) bool {
	if isEmpty(other) || !SameDomain(other.Domain(), generic) {
		return false
	}
	o, ok := ValueAs[Errc](other)
	return ok && o == v
}

// GenericCode returns the generic code holding e.
func GenericCode(e Errc) StatusCode[Errc] { return New(generic, e) }

// FromErrc returns the errored generic code holding e. It terminates the
// process if e is Success.
func FromErrc(e Errc) Errored[Errc] { return FromCode(GenericCode(e)) }
