package plan

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/flanksource/docket/suite"
)

// docType exposes a TypeDoc as a suite.TypeInfo, resolving generic
// instantiations through the declaring document.
type docType struct {
	doc *Document
	t   *TypeDoc
}

// TypeInfo returns the descriptor for a type declared in the document.
func (d *Document) TypeInfo(name string) (suite.TypeInfo, bool) {
	for i := range d.Types {
		if d.Types[i].Name == name {
			return &docType{doc: d, t: &d.Types[i]}, true
		}
	}
	return nil, false
}

func (d *docType) Name() string {
	if len(d.t.TypeParams) > 0 {
		return fmt.Sprintf("%s[%s]", d.t.Name, strings.Join(d.t.TypeParams, ","))
	}
	return d.t.Name
}

func (d *docType) Namespace() string {
	return d.t.Namespace
}

func (d *docType) FullName() string {
	if d.t.Namespace != "" {
		return d.t.Namespace + "." + d.Name()
	}
	return d.Name()
}

func (d *docType) ContainsTypeParams() bool {
	return len(d.t.TypeParams) > 0
}

func (d *docType) TypeParams() []string {
	return d.t.TypeParams
}

func (d *docType) IsStatic() bool {
	return d.t.Static
}

// MakeGenericType resolves typeArgs against the declared instantiations. The
// concrete type must be declared in the same document.
func (d *docType) MakeGenericType(typeArgs []reflect.Type) (suite.TypeInfo, error) {
	for _, inst := range d.t.Instantiations {
		declared, err := resolveScalars(inst.TypeArgs)
		if err != nil {
			return nil, fmt.Errorf("instantiation of %s: %w", d.t.Name, err)
		}
		if !typesEqual(declared, typeArgs) {
			continue
		}
		concrete, ok := d.doc.TypeInfo(inst.Type)
		if !ok {
			return nil, fmt.Errorf("instantiation of %s references undeclared type %q", d.t.Name, inst.Type)
		}
		return concrete, nil
	}
	return nil, fmt.Errorf("no instantiation of %s declared for the given type arguments", d.t.Name)
}

// HasConstructor matches argTypes against the declared constructor
// signatures. Static types and open generic types have none; a non-static
// type with no declared constructors keeps the implicit zero-argument one.
func (d *docType) HasConstructor(argTypes []reflect.Type) bool {
	if d.t.Static || len(d.t.TypeParams) > 0 {
		return false
	}
	if len(d.t.Constructors) == 0 {
		return len(argTypes) == 0
	}
	for _, ctor := range d.t.Constructors {
		params, err := resolveScalars(ctor.Params)
		if err != nil {
			continue
		}
		if typesEqual(params, argTypes) {
			return true
		}
	}
	return false
}

// Methods returns the declared methods in document order.
func (d *docType) Methods() []suite.MethodInfo {
	methods := make([]suite.MethodInfo, 0, len(d.t.Methods))
	for _, m := range d.t.Methods {
		methods = append(methods, docMethod{owner: d.FullName(), m: m})
	}
	return methods
}

type docMethod struct {
	owner string
	m     MethodDoc
}

func (m docMethod) Name() string {
	return m.m.Name
}

func (m docMethod) FullName() string {
	return m.owner + "." + m.m.Name
}

func (m docMethod) ParamCount() int {
	return m.m.Params
}

func resolveScalars(names []string) ([]reflect.Type, error) {
	types := make([]reflect.Type, 0, len(names))
	for _, name := range names {
		t, err := ScalarType(name)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func typesEqual(a, b []reflect.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
