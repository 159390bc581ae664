package suite

import (
	"reflect"

	"github.com/samber/lo"
)

// TypeInfo describes a fixture type to the construction engine.
// Implementations back it with reflection, declarative documents, or
// hand-built registrations for open generic types.
type TypeInfo interface {
	// Name returns the simple display name, e.g. "Repo[int]"
	Name() string

	// Namespace returns the package path, or "" when the type has none
	Namespace() string

	// FullName returns Namespace() + "." + Name() when a namespace is present
	FullName() string

	// ContainsTypeParams reports whether unresolved type parameters remain
	ContainsTypeParams() bool

	// TypeParams returns the names of the unresolved type parameters
	TypeParams() []string

	// IsStatic reports a container of free functions that is never instantiated
	IsStatic() bool

	// MakeGenericType binds type arguments, returning the specialized descriptor
	MakeGenericType(typeArgs []reflect.Type) (TypeInfo, error)

	// HasConstructor reports whether a constructor exists whose parameter
	// types exactly match argTypes
	HasConstructor(argTypes []reflect.Type) bool

	// Methods returns every method the descriptor can see, in a stable
	// enumeration order
	Methods() []MethodInfo
}

// MethodInfo identifies a single method of a fixture type. The engine does
// not interpret methods beyond their existence; test-case builders may probe
// implementations for extra capabilities such as
//
//	interface{ ParamCount() int }
//
// via type assertion.
type MethodInfo interface {
	// Name returns the method name
	Name() string

	// FullName returns the declaring type's full name plus the method name
	FullName() string
}

// ArgTypes returns the runtime types of argument values, positionally.
// A nil argument yields a nil entry, which matches no declared parameter type.
func ArgTypes(args []any) []reflect.Type {
	return lo.Map(args, func(arg any, _ int) reflect.Type {
		return reflect.TypeOf(arg)
	})
}
