package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/statuscode/errors"
	"github.com/kbukum/statuscode/logger"
)

// Recovery returns a Gin middleware that recovers from panics, logs the
// stack and responds with an INTERNAL_ERROR body.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.WithContext(c.Request.Context()).Error("Panic recovered", logger.Fields(
					logger.FieldError, fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
					logger.FieldPath, c.Request.URL.Path,
					logger.FieldMethod, c.Request.Method,
					logger.FieldClientIP, c.ClientIP(),
				))
				appErr := errors.Internal(fmt.Errorf("panic: %v", r))
				SetStatus(c, appErr.Status())
				c.AbortWithStatusJSON(http.StatusInternalServerError, appErr.ToResponse())
			}
		}()
		c.Next()
	}
}
