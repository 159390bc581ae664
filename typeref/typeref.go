// Package typeref implements type descriptors backed by Go reflection:
// concrete types with registered factory constructors, open generic types
// resolved through explicit instantiations, and static containers built from
// free functions.
package typeref

import (
	"fmt"
	"reflect"

	"github.com/flanksource/docket/suite"
)

// Type describes a concrete Go type. Factory functions registered alongside
// it act as the type's constructors; while none are registered the type has
// an implicit zero-argument constructor, mirroring how declaring a
// constructor removes the implicit default.
type Type struct {
	typ   reflect.Type
	ctors []reflect.Type
}

// Of creates the descriptor for T. Each ctor must be a function returning T
// (or a value assignable to T) as its first result.
func Of[T any](ctors ...any) *Type {
	return newType(reflect.TypeOf((*T)(nil)).Elem(), ctors...)
}

// New creates the descriptor for sample's dynamic type.
func New(sample any, ctors ...any) *Type {
	t := reflect.TypeOf(sample)
	if t == nil {
		panic("typeref: nil sample")
	}
	return newType(t, ctors...)
}

func newType(t reflect.Type, ctors ...any) *Type {
	out := &Type{typ: t}
	for _, ctor := range ctors {
		ct := reflect.TypeOf(ctor)
		if ct == nil || ct.Kind() != reflect.Func {
			panic(fmt.Sprintf("typeref: constructor for %s must be a function, got %T", t, ctor))
		}
		out.ctors = append(out.ctors, ct)
	}
	return out
}

// Reflect returns the underlying reflect.Type.
func (t *Type) Reflect() reflect.Type {
	return t.typ
}

func (t *Type) Name() string {
	if name := t.typ.Name(); name != "" {
		return name
	}
	return t.typ.String()
}

func (t *Type) Namespace() string {
	return t.typ.PkgPath()
}

func (t *Type) FullName() string {
	if ns := t.Namespace(); ns != "" {
		return ns + "." + t.Name()
	}
	return t.Name()
}

func (t *Type) ContainsTypeParams() bool { return false }

func (t *Type) TypeParams() []string { return nil }

func (t *Type) IsStatic() bool { return false }

func (t *Type) MakeGenericType([]reflect.Type) (suite.TypeInfo, error) {
	return nil, fmt.Errorf("typeref: %s is not a generic type", t.Name())
}

// HasConstructor reports whether a registered factory's parameter types
// exactly match argTypes. With no factories registered only the implicit
// zero-argument constructor exists.
func (t *Type) HasConstructor(argTypes []reflect.Type) bool {
	if len(t.ctors) == 0 {
		return len(argTypes) == 0
	}
	for _, ctor := range t.ctors {
		if paramsMatch(ctor, argTypes) {
			return true
		}
	}
	return false
}

func paramsMatch(ctor reflect.Type, argTypes []reflect.Type) bool {
	if ctor.IsVariadic() || ctor.NumIn() != len(argTypes) {
		return false
	}
	for i, argType := range argTypes {
		if ctor.In(i) != argType {
			return false
		}
	}
	return true
}

// Methods enumerates the exported methods of the type and its pointer, in
// reflect's name-sorted order.
func (t *Type) Methods() []suite.MethodInfo {
	ptr := reflect.PointerTo(t.typ)
	methods := make([]suite.MethodInfo, 0, ptr.NumMethod())
	for i := 0; i < ptr.NumMethod(); i++ {
		methods = append(methods, method{owner: t.FullName(), m: ptr.Method(i)})
	}
	return methods
}
