package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/statuscode/errors"
	"github.com/kbukum/statuscode/server/middleware"
	"github.com/kbukum/statuscode/status"
)

// DataResponse is the standard success envelope.
type DataResponse struct {
	Data any   `json:"data"`
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries collection metadata.
type Meta struct {
	Total int `json:"total,omitempty"`
}

// RespondWithError renders err as an error body. Errors that are or carry
// an *errors.AppError or a status code keep their condition and HTTP status;
// anything else is a 500.
func RespondWithError(c *gin.Context, err error) {
	appErr := errors.Wrap(err)
	if appErr == nil {
		appErr = errors.Internal(nil)
	}
	middleware.SetStatus(c, appErr.Status())
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondStatus renders a failure code as an error body. An empty or
// success code is answered with 204.
func RespondStatus(c *gin.Context, code status.Code) {
	appErr := errors.FromStatus(code)
	if appErr == nil {
		RespondNoContent(c)
		return
	}
	middleware.SetStatus(c, code)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
}

// RespondOK sends a 200 response wrapping data.
func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// RespondOKWithMeta sends a 200 response with data and metadata.
func RespondOKWithMeta(c *gin.Context, data any, meta *Meta) {
	c.JSON(http.StatusOK, DataResponse{Data: data, Meta: meta})
}

// RespondNoContent sends a 204 with no body.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
