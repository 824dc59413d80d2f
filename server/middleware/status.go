package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/statuscode/status"
)

// ErrcHeader names the generic condition of an errored response.
const ErrcHeader = "X-Status-Errc"

const statusKey = "status.code"

// SetStatus attaches the status code a handler responded with to c, so the
// tracing middleware can record it, and sets ErrcHeader for failures.
func SetStatus(c *gin.Context, code status.Code) {
	if code == nil || code.Empty() {
		return
	}
	c.Set(statusKey, code)
	if code.Failure() {
		c.Header(ErrcHeader, code.Generic().String())
	}
}

// GetStatus returns the status code attached by SetStatus.
func GetStatus(c *gin.Context) (status.Code, bool) {
	v, ok := c.Get(statusKey)
	if !ok {
		return nil, false
	}
	code, ok := v.(status.Code)
	return code, ok
}
