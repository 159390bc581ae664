// Package metadata holds declarative type-level annotations for fixtures:
// descriptions, categories, run-state overrides and environment
// requirements, registered under type full names and applied to built
// suites.
package metadata

import (
	"sync"

	"github.com/samber/lo"

	"github.com/flanksource/docket/suite"
)

// Requires states the environment a fixture needs. An unmet requirement
// marks the suite skipped, not invalid.
type Requires struct {
	// Version is a semver constraint checked against the host version,
	// e.g. ">= 1.22"
	Version string `json:"version,omitempty" yaml:"version,omitempty"`

	// OS lists the operating systems (GOOS values) the fixture runs on
	OS []string `json:"os,omitempty" yaml:"os,omitempty"`
}

// Meta is the annotation set for one fixture type.
type Meta struct {
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Categories  []string `json:"categories,omitempty" yaml:"categories,omitempty"`

	// Properties are extra property values added to the suite
	Properties map[string][]any `json:"properties,omitempty" yaml:"properties,omitempty"`

	// RunState overrides the suite's run state, e.g. suite.Ignored. It
	// never downgrades a suite already found invalid.
	RunState suite.RunState `json:"run_state,omitempty" yaml:"run_state,omitempty"`

	// Reason accompanies RunState
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	Requires *Requires `json:"requires,omitempty" yaml:"requires,omitempty"`
}

// Registry maps type full names to their annotations. It is safe for
// concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Meta
}

// NewRegistry creates an empty annotation registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]Meta),
	}
}

// Register sets the annotations for a type, replacing any registered earlier.
func (r *Registry) Register(fullName string, meta Meta) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.types[fullName] = meta
}

// Lookup returns the annotations registered for a type.
func (r *Registry) Lookup(fullName string) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meta, ok := r.types[fullName]
	return meta, ok
}

// List returns all registered type full names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Keys(r.types)
}

// DefaultRegistry is the global annotation registry.
var DefaultRegistry = NewRegistry()

// Register sets the annotations for a type on the default registry.
func Register(fullName string, meta Meta) {
	DefaultRegistry.Register(fullName, meta)
}

// Lookup returns the annotations for a type from the default registry.
func Lookup(fullName string) (Meta, bool) {
	return DefaultRegistry.Lookup(fullName)
}
