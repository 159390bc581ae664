package fixtures

import (
	"reflect"

	"github.com/flanksource/docket/suite"
)

// Data carries the construction-time parameters of one fixture: constructor
// arguments, explicit type arguments, a run-state override and extra
// properties.
type Data struct {
	// Arguments are passed to the fixture's constructor. A leading run of
	// reflect.Type values doubles as type arguments for generic fixtures.
	Arguments []any `json:"arguments,omitempty"`

	// TypeArgs are explicit type arguments for a generic fixture. Leave
	// empty to have them taken from Arguments or deduced.
	TypeArgs []reflect.Type `json:"-"`

	// RunState overrides the suite's run state. The zero value leaves the
	// state unchanged, and no override downgrades a suite already found
	// invalid.
	RunState suite.RunState `json:"run_state,omitempty"`

	// Properties are copied onto the suite, preserving multiplicity.
	Properties *suite.PropertyBag `json:"properties,omitempty"`
}

// NewData creates fixture data for the given constructor arguments.
func NewData(args ...any) *Data {
	return &Data{
		Arguments:  args,
		Properties: suite.NewPropertyBag(),
	}
}

// WithTypeArgs sets explicit type arguments for a generic fixture.
func (d *Data) WithTypeArgs(typeArgs ...reflect.Type) *Data {
	d.TypeArgs = typeArgs
	return d
}

// WithProperty adds a property value, keeping any existing values under the
// same key.
func (d *Data) WithProperty(key string, value any) *Data {
	if d.Properties == nil {
		d.Properties = suite.NewPropertyBag()
	}
	d.Properties.Add(key, value)
	return d
}

// Ignore marks the fixture ignored, recording the reason.
func (d *Data) Ignore(reason string) *Data {
	d.RunState = suite.Ignored
	return d.WithProperty(suite.PropertySkipReason, reason)
}

// Explicit marks the fixture to run only when selected directly.
func (d *Data) Explicit(reason string) *Data {
	d.RunState = suite.Explicit
	if reason == "" {
		return d
	}
	return d.WithProperty(suite.PropertySkipReason, reason)
}
