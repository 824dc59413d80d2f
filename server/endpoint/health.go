package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/statuscode/observability"
	"github.com/kbukum/statuscode/version"
)

// Checkers returns the components to include in a health report.
type Checkers func() []observability.HealthChecker

// Health returns a handler that reports service health including component
// statuses. A down component turns the response into a 503.
func Health(serviceName string, checkers Checkers) gin.HandlerFunc {
	return func(c *gin.Context) {
		sh := observability.NewServiceHealth(serviceName, version.Version)
		if checkers != nil {
			for _, hc := range checkers() {
				sh.AddComponent(hc.CheckHealth(c.Request.Context()))
			}
		}

		httpStatus := http.StatusOK
		if sh.Status == observability.HealthStatusDown {
			httpStatus = http.StatusServiceUnavailable
		}

		c.JSON(httpStatus, gin.H{
			"status":     sh.Status,
			"service":    sh.Service,
			"version":    sh.Version,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
			"components": sh.Components,
		})
	}
}
