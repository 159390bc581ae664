// Package plan loads declarative fixture plans: YAML documents that describe
// fixture types (constructors, methods, generic instantiations) together with
// the fixture requests to build from them. A loaded document yields
// suite.TypeInfo descriptors and fixtures.Data values ready for the builder.
package plan

import (
	"fmt"
	"reflect"
	"time"
)

// Document is one parsed plan file: the types it declares and the fixtures
// it requests.
type Document struct {
	// Path is the file the document was loaded from, "" for in-memory documents.
	Path string `json:"path,omitempty" yaml:"-"`

	Types    []TypeDoc `json:"types,omitempty" yaml:"types"`
	Fixtures []Fixture `json:"fixtures,omitempty" yaml:"fixtures"`
}

// TypeDoc declares one fixture type.
type TypeDoc struct {
	Name      string `json:"name" yaml:"name"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace"`

	// Static marks a container of free functions that is never instantiated
	Static bool `json:"static,omitempty" yaml:"static"`

	// TypeParams names the type parameters of a generic type
	TypeParams []string `json:"type_params,omitempty" yaml:"typeParams"`

	// Constructors lists the parameter signatures the type can be
	// constructed with. A non-static type with none declared has a single
	// implicit zero-argument constructor.
	Constructors []CtorDoc `json:"constructors,omitempty" yaml:"constructors"`

	Methods []MethodDoc `json:"methods,omitempty" yaml:"methods"`

	// Instantiations maps type-argument combinations of a generic type to
	// the concrete type declared for them
	Instantiations []InstDoc `json:"instantiations,omitempty" yaml:"instantiations"`
}

// CtorDoc is one constructor signature, parameter types by scalar name.
type CtorDoc struct {
	Params []string `json:"params,omitempty" yaml:"params"`
}

// MethodDoc declares one method. Methods keep their document order.
type MethodDoc struct {
	Name string `json:"name" yaml:"name"`

	// Params is the parameter count the method takes
	Params int `json:"params,omitempty" yaml:"params"`
}

// InstDoc binds one type-argument combination to a concrete type declared in
// the same document.
type InstDoc struct {
	// TypeArgs are scalar type names, e.g. [int, string]
	TypeArgs []string `json:"type_args" yaml:"typeArgs"`

	// Type is the name of the concrete TypeDoc for this combination
	Type string `json:"type" yaml:"type"`
}

// Fixture is one fixture request: a type plus the construction parameters to
// build a suite from it.
type Fixture struct {
	// Type names the TypeDoc to build
	Type string `json:"type" yaml:"type"`

	// Args are constructor arguments: scalar values, or {type: name}
	// entries that resolve to type references
	Args []Arg `json:"args,omitempty" yaml:"args"`

	// TypeArgs are explicit type arguments by scalar name
	TypeArgs []string `json:"type_args,omitempty" yaml:"typeArgs"`

	// RunState overrides the suite's run state, e.g. "ignored"
	RunState string `json:"run_state,omitempty" yaml:"runState"`

	// Reason accompanies RunState
	Reason string `json:"reason,omitempty" yaml:"reason"`

	// Properties are copied onto the suite; each key may carry one value
	// or a list
	Properties map[string]Values `json:"properties,omitempty" yaml:"properties"`
}

// Arg is one constructor argument: either a scalar value or a type
// reference written as {type: name}.
type Arg struct {
	value   any
	typeRef string
}

// Value returns the scalar value of a non-type argument.
func (a Arg) Value() any {
	return a.value
}

// TypeRef returns the referenced scalar type name, "" for value arguments.
func (a Arg) TypeRef() string {
	return a.typeRef
}

// UnmarshalYAML accepts a scalar value or a single-key {type: name} mapping.
func (a *Arg) UnmarshalYAML(unmarshal func(any) error) error {
	var ref struct {
		Type string `yaml:"type"`
	}
	if err := unmarshal(&ref); err == nil && ref.Type != "" {
		a.typeRef = ref.Type
		return nil
	}

	var value any
	if err := unmarshal(&value); err != nil {
		return err
	}
	a.value = normalize(value)
	return nil
}

// Values is an ordered value list that also accepts a single scalar.
type Values []any

// UnmarshalYAML accepts a sequence or a bare scalar.
func (v *Values) UnmarshalYAML(unmarshal func(any) error) error {
	var list []any
	if err := unmarshal(&list); err == nil {
		for i, value := range list {
			list[i] = normalize(value)
		}
		*v = list
		return nil
	}

	var single any
	if err := unmarshal(&single); err != nil {
		return err
	}
	*v = Values{normalize(single)}
	return nil
}

// normalize maps YAML numbers onto int64/float64 so that constructor
// matching against scalar parameter types stays exact.
func normalize(value any) any {
	switch v := value.(type) {
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return float64(v)
	default:
		return value
	}
}

// scalarTypes maps the scalar type names usable in plans to their runtime
// types. Integers and floats resolve to the normalized widths.
var scalarTypes = map[string]reflect.Type{
	"string":   reflect.TypeOf(""),
	"int":      reflect.TypeOf(int64(0)),
	"float":    reflect.TypeOf(float64(0)),
	"bool":     reflect.TypeOf(true),
	"duration": reflect.TypeOf(time.Duration(0)),
	"time":     reflect.TypeOf(time.Time{}),
}

// ScalarType resolves a scalar type name from a plan document.
func ScalarType(name string) (reflect.Type, error) {
	t, ok := scalarTypes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scalar type %q", name)
	}
	return t, nil
}
