package logger

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// ComponentRegistry records what a process brought up during startup so it
// can be reported once the process is ready.
type ComponentRegistry struct {
	mu         sync.Mutex
	startTime  time.Time
	components []Component
	routes     []Route
}

// Component is an infrastructure piece such as the HTTP server or an
// exporter.
type Component struct {
	Name    string
	Type    string // "server", "tracer", "meter"
	Status  string // "active", "disabled", "error"
	Details string
}

// Route is a registered HTTP handler.
type Route struct {
	Method  string
	Path    string
	Handler string
}

// NewComponentRegistry creates a new component registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{startTime: time.Now()}
}

// StartTime returns the registry creation time.
func (r *ComponentRegistry) StartTime() time.Time {
	return r.startTime
}

// RegisterComponent records an infrastructure component.
func (r *ComponentRegistry) RegisterComponent(name, componentType, status, details string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.components = append(r.components, Component{
		Name:    name,
		Type:    componentType,
		Status:  status,
		Details: details,
	})
}

// RegisterRoute records an HTTP route.
func (r *ComponentRegistry) RegisterRoute(method, path, handler string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, Route{Method: method, Path: path, Handler: handler})
}

// Components returns the registered components in registration order.
func (r *ComponentRegistry) Components() []Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.components)
}

// Routes returns the registered routes ordered by path, then method.
func (r *ComponentRegistry) Routes() []Route {
	r.mu.Lock()
	routes := slices.Clone(r.routes)
	r.mu.Unlock()
	slices.SortFunc(routes, func(a, b Route) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Method, b.Method))
	})
	return routes
}

// Log writes a startup summary to l: one line per component and route,
// followed by the elapsed startup time.
func (r *ComponentRegistry) Log(l *Logger) {
	for _, c := range r.Components() {
		fields := Fields("type", c.Type, FieldStatus, c.Status)
		if c.Details != "" {
			fields["details"] = c.Details
		}
		l.Info("component "+c.Name, fields)
	}
	for _, rt := range r.Routes() {
		l.Debug("route", Fields(FieldMethod, rt.Method, FieldPath, rt.Path, "handler", rt.Handler))
	}
	l.Info("startup complete", DurationFields("startup", time.Since(r.startTime)))
}
