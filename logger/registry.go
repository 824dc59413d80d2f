package logger

import (
	"slices"
	"sync"
)

// components holds the loggers handed out by Get, keyed by component name.
var components sync.Map

// Register makes l the logger Get returns for component.
func Register(component string, l *Logger) {
	components.Store(component, l)
}

// Get returns the logger registered for component. Unregistered components
// get the current global logger tagged with the component name.
func Get(component string) *Logger {
	if l, ok := components.Load(component); ok {
		return l.(*Logger)
	}
	return GetGlobalLogger().WithComponent(component)
}

// RegisterDefaults derives a logger for each component from the global
// logger. Call it again after SetGlobalLogger to pick up the new output.
func RegisterDefaults(names ...string) {
	global := GetGlobalLogger()
	for _, name := range names {
		Register(name, global.WithComponent(name))
	}
}

// Registered returns the sorted names of the registered components.
func Registered() []string {
	var names []string
	components.Range(func(k, _ any) bool {
		names = append(names, k.(string))
		return true
	})
	slices.Sort(names)
	return names
}
