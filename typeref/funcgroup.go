package typeref

import (
	"fmt"
	"reflect"

	"github.com/flanksource/docket/suite"
)

// FuncGroup is a static container: an ordered set of free functions exposed
// as the methods of a fixture that is never instantiated. Static containers
// are exempt from constructor validation.
type FuncGroup struct {
	name      string
	namespace string
	funcs     []fn
}

type fn struct {
	name string
	typ  reflect.Type
}

// NewFuncGroup creates an empty static container.
func NewFuncGroup(name string) *FuncGroup {
	return &FuncGroup{name: name}
}

// InNamespace sets the namespace reported by the descriptor.
func (g *FuncGroup) InNamespace(ns string) *FuncGroup {
	g.namespace = ns
	return g
}

// Add registers a free function under the given method name. Functions keep
// their registration order.
func (g *FuncGroup) Add(name string, function any) *FuncGroup {
	t := reflect.TypeOf(function)
	if t == nil || t.Kind() != reflect.Func {
		panic(fmt.Sprintf("typeref: %s.%s must be a function, got %T", g.name, name, function))
	}
	g.funcs = append(g.funcs, fn{name: name, typ: t})
	return g
}

func (g *FuncGroup) Name() string {
	return g.name
}

func (g *FuncGroup) Namespace() string {
	return g.namespace
}

func (g *FuncGroup) FullName() string {
	if g.namespace != "" {
		return g.namespace + "." + g.name
	}
	return g.name
}

func (g *FuncGroup) ContainsTypeParams() bool { return false }

func (g *FuncGroup) TypeParams() []string { return nil }

func (g *FuncGroup) IsStatic() bool { return true }

func (g *FuncGroup) MakeGenericType([]reflect.Type) (suite.TypeInfo, error) {
	return nil, fmt.Errorf("typeref: %s is not a generic type", g.name)
}

// HasConstructor always reports false: static containers are never
// instantiated.
func (g *FuncGroup) HasConstructor([]reflect.Type) bool { return false }

func (g *FuncGroup) Methods() []suite.MethodInfo {
	methods := make([]suite.MethodInfo, 0, len(g.funcs))
	for _, f := range g.funcs {
		methods = append(methods, funcMethod{owner: g.FullName(), name: f.name, typ: f.typ})
	}
	return methods
}
