package plan

import (
	"fmt"
	"sort"

	"github.com/flanksource/docket/fixtures"
	"github.com/flanksource/docket/suite"
)

// Data converts the fixture request into builder data. Type-reference
// arguments become reflect.Type values, so a leading run of them doubles as
// type arguments the way the builder expects. Returns nil when the request
// carries no construction parameters at all.
func (f *Fixture) Data() (*fixtures.Data, error) {
	if len(f.Args) == 0 && len(f.TypeArgs) == 0 && f.RunState == "" && len(f.Properties) == 0 {
		return nil, nil
	}

	args := make([]any, 0, len(f.Args))
	for _, arg := range f.Args {
		if ref := arg.TypeRef(); ref != "" {
			t, err := ScalarType(ref)
			if err != nil {
				return nil, fmt.Errorf("argument: %w", err)
			}
			args = append(args, t)
			continue
		}
		args = append(args, arg.Value())
	}

	data := fixtures.NewData(args...)

	if len(f.TypeArgs) > 0 {
		typeArgs, err := resolveScalars(f.TypeArgs)
		if err != nil {
			return nil, fmt.Errorf("type arguments: %w", err)
		}
		data.WithTypeArgs(typeArgs...)
	}

	if f.RunState != "" {
		data.RunState = suite.RunState(f.RunState)
		if f.Reason != "" {
			data.WithProperty(suite.PropertySkipReason, f.Reason)
		}
	}

	keys := make([]string, 0, len(f.Properties))
	for key := range f.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, value := range f.Properties[key] {
			data.WithProperty(key, value)
		}
	}

	return data, nil
}

// Build constructs one suite per fixture request, in document order.
// Requests without construction parameters go through the plain build path.
func (d *Document) Build(b *fixtures.Builder) ([]*suite.Suite, error) {
	suites := make([]*suite.Suite, 0, len(d.Fixtures))
	for i := range d.Fixtures {
		fixture := &d.Fixtures[i]
		t, ok := d.TypeInfo(fixture.Type)
		if !ok {
			return nil, fmt.Errorf("fixtures[%d]: undeclared type %q", i, fixture.Type)
		}

		data, err := fixture.Data()
		if err != nil {
			return nil, fmt.Errorf("fixtures[%d] (%s): %w", i, fixture.Type, err)
		}
		if data == nil {
			suites = append(suites, b.BuildFrom(t))
			continue
		}
		suites = append(suites, b.BuildFromData(t, data))
	}
	return suites, nil
}
