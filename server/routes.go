package server

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"github.com/kbukum/statuscode/lookup"
	"github.com/kbukum/statuscode/observability"
	"github.com/kbukum/statuscode/status"
	"github.com/kbukum/statuscode/validation"
)

type compareQuery struct {
	A string `form:"a" json:"a" validate:"required"`
	B string `form:"b" json:"b" validate:"required"`
}

func registerLookupRoutes(rg *gin.RouterGroup, maxSpec int) {
	h := &lookupHandler{maxSpec: maxSpec}
	rg.GET("/codes", h.list)
	rg.GET("/codes/:spec", h.describe)
	rg.GET("/compare", h.compare)
}

type lookupHandler struct {
	maxSpec int
}

func (h *lookupHandler) checkSpec(v *validation.Validator, field, spec string) {
	if h.maxSpec > 0 {
		v.MaxLength(field, spec, h.maxSpec)
	}
}

// resolve resolves spec inside a status.resolve span.
func resolve(c *gin.Context, spec string) (status.Errored[status.Errc], error) {
	_, span := observability.StartSpan(c.Request.Context(), observability.SpanResolve)
	defer span.End()

	e, err := lookup.Resolve(spec)
	if err != nil {
		span.RecordError(err)
		return e, err
	}
	span.SetAttributes(observability.StatusAttributes(e)...)
	return e, nil
}

// list handles GET /v1/codes.
func (h *lookupHandler) list(c *gin.Context) {
	entries := lookup.Catalog()
	RespondOKWithMeta(c, entries, &Meta{Total: len(entries)})
}

// describe handles GET /v1/codes/:spec.
func (h *lookupHandler) describe(c *gin.Context) {
	spec := c.Param("spec")
	v := validation.New().Required("spec", spec)
	h.checkSpec(v, "spec", spec)
	if err := v.Validate(); err != nil {
		RespondWithError(c, err)
		return
	}

	e, err := resolve(c, spec)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	RespondOK(c, lookup.Describe(e))
}

// compare handles GET /v1/compare?a=&b=.
func (h *lookupHandler) compare(c *gin.Context) {
	var q compareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		RespondWithError(c, err)
		return
	}
	if err := validation.Validate(q); err != nil {
		RespondWithError(c, err)
		return
	}
	v := validation.New()
	h.checkSpec(v, "a", q.A)
	h.checkSpec(v, "b", q.B)
	if err := v.Validate(); err != nil {
		RespondWithError(c, err)
		return
	}

	a, err := resolve(c, q.A)
	if err != nil {
		RespondWithError(c, err)
		return
	}
	b, err := resolve(c, q.B)
	if err != nil {
		RespondWithError(c, err)
		return
	}

	_, span := observability.StartSpan(c.Request.Context(), observability.SpanCompare)
	equivalent := status.Equal(a, b)
	span.SetAttributes(attribute.Bool(observability.AttrEquivalent, equivalent))
	span.End()

	RespondOK(c, lookup.Comparison{
		A:          lookup.Describe(a),
		B:          lookup.Describe(b),
		Equivalent: equivalent,
	})
}
