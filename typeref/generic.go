package typeref

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/docket/suite"
)

// Generic is an open fixture definition: named type parameters plus the
// instantiations registered for them. The engine resolves type arguments
// against the registered instantiations; a combination that was never
// registered stays unresolved.
type Generic struct {
	name           string
	namespace      string
	params         []string
	instantiations []instantiation
}

type instantiation struct {
	typeArgs []reflect.Type
	typ      *Type
}

// NewGeneric creates an open type with the given name and type parameter
// names, e.g. NewGeneric("Repo", "T").
func NewGeneric(name string, params ...string) *Generic {
	return &Generic{name: name, params: params}
}

// InNamespace sets the namespace reported by the descriptor.
func (g *Generic) InNamespace(ns string) *Generic {
	g.namespace = ns
	return g
}

// Instantiate registers the concrete descriptor for one combination of type
// arguments.
func (g *Generic) Instantiate(concrete *Type, typeArgs ...reflect.Type) *Generic {
	g.instantiations = append(g.instantiations, instantiation{typeArgs: typeArgs, typ: concrete})
	return g
}

func (g *Generic) Name() string {
	return fmt.Sprintf("%s[%s]", g.name, strings.Join(g.params, ","))
}

func (g *Generic) Namespace() string {
	return g.namespace
}

func (g *Generic) FullName() string {
	if g.namespace != "" {
		return g.namespace + "." + g.Name()
	}
	return g.Name()
}

func (g *Generic) ContainsTypeParams() bool { return true }

func (g *Generic) TypeParams() []string { return g.params }

func (g *Generic) IsStatic() bool { return false }

// MakeGenericType returns the registered instantiation for typeArgs.
func (g *Generic) MakeGenericType(typeArgs []reflect.Type) (suite.TypeInfo, error) {
	for _, inst := range g.instantiations {
		if typesEqual(inst.typeArgs, typeArgs) {
			return inst.typ, nil
		}
	}
	return nil, fmt.Errorf("typeref: no instantiation of %s registered for [%s]", g.name, renderTypes(typeArgs))
}

// HasConstructor always reports false: an open type cannot be constructed.
func (g *Generic) HasConstructor([]reflect.Type) bool { return false }

// Methods always returns nil: methods live on the instantiations.
func (g *Generic) Methods() []suite.MethodInfo { return nil }

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

func renderTypes(types []reflect.Type) string {
	return strings.Join(lo.Map(types, func(t reflect.Type, _ int) string {
		return t.String()
	}), ",")
}
