package typeref

import "reflect"

// method wraps a reflect.Method discovered on a concrete type.
type method struct {
	owner string
	m     reflect.Method
}

func (m method) Name() string {
	return m.m.Name
}

func (m method) FullName() string {
	return m.owner + "." + m.m.Name
}

// ParamCount returns the number of parameters, excluding the receiver.
func (m method) ParamCount() int {
	return m.m.Type.NumIn() - 1
}

// funcMethod wraps a free function registered on a FuncGroup.
type funcMethod struct {
	owner string
	name  string
	typ   reflect.Type
}

func (f funcMethod) Name() string {
	return f.name
}

func (f funcMethod) FullName() string {
	return f.owner + "." + f.name
}

// ParamCount returns the number of parameters.
func (f funcMethod) ParamCount() int {
	return f.typ.NumIn()
}
