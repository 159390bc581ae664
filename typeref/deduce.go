package typeref

import (
	"reflect"

	"github.com/flanksource/docket/suite"
)

// Deducer infers type arguments for a Generic by matching the runtime types
// of constructor arguments against the constructors of its registered
// instantiations. Exactly one matching instantiation wins; none or several
// is a failed deduction, never an error.
type Deducer struct{}

// NewDeducer creates the default deducer.
func NewDeducer() *Deducer {
	return &Deducer{}
}

func (d *Deducer) TryDeduce(t suite.TypeInfo, args []any) ([]reflect.Type, bool) {
	g, ok := t.(*Generic)
	if !ok || len(args) == 0 {
		return nil, false
	}

	argTypes := suite.ArgTypes(args)
	var deduced []reflect.Type
	matches := 0
	for _, inst := range g.instantiations {
		if inst.typ.HasConstructor(argTypes) {
			deduced = inst.typeArgs
			matches++
		}
	}
	if matches != 1 {
		return nil, false
	}
	return deduced, true
}
