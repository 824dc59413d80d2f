package status

import (
	"os"

	"github.com/kbukum/statuscode/logger"
)

// ExitCodeViolation is the exit status of a process that tried to build an
// Errored from a success value, following the 128+SIGABRT convention.
const ExitCodeViolation = 134

// violation reports c and terminates the process without unwinding.
func violation(c Code) {
	fields := logger.Fields(
		logger.FieldErrc, c.Generic().String(),
		"detail", c.Message(),
	)
	if d := c.Domain(); d != nil {
		fields[logger.FieldDomain] = d.Name()
		fields[logger.FieldDomainID] = d.ID().String()
	}
	logger.Get("status").Error("errored status code constructed from a success value", fields)
	os.Exit(ExitCodeViolation)
}
