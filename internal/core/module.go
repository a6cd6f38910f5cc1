// Package core implements the module system: registration, lifecycle
// management, and the shared application context that modules use to
// discover each other's services.
package core

// ModuleID uniquely identifies a module (e.g. "memory.file",
// "gateway.http").
type ModuleID string

// ModuleInfo describes a registered module.
type ModuleInfo struct {
	// ID is the module's unique identifier.
	ID ModuleID

	// New returns a fresh, unconfigured instance of the module.
	New func() Module
}

// Module is the minimal interface every module implements. Lifecycle
// behavior is added through the optional interfaces in lifecycle.go.
type Module interface {
	ModuleInfo() ModuleInfo
}
