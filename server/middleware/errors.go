package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kbukum/statuscode/errors"
)

// Errors renders the last error a handler attached with c.Error, unless the
// handler already wrote a response. Errors that carry a status code keep
// their condition; anything else becomes INTERNAL_ERROR.
func Errors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		appErr := errors.Wrap(c.Errors.Last().Err)
		SetStatus(c, appErr.Status())
		c.JSON(appErr.HTTPStatus, appErr.ToResponse())
	}
}
