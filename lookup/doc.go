// Package lookup resolves textual status code specs into errored generic
// codes and describes codes of any domain.
//
// A spec is a condition name ("invalid_argument"), a POSIX symbol
// ("EINVAL"), a decimal value ("22") or an application error code
// ("NOT_FOUND"):
//
//	e, err := lookup.Resolve("ETIMEDOUT")
//	d := lookup.Describe(e)
//	fmt.Println(d.AppCode, d.HTTPStatus) // TIMEOUT 504
package lookup
