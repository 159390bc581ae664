package metadata

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/docket/suite"
)

type stubType struct{ name string }

func (s stubType) Name() string                            { return s.name }
func (s stubType) Namespace() string                       { return "" }
func (s stubType) FullName() string                        { return s.name }
func (s stubType) ContainsTypeParams() bool                { return false }
func (s stubType) TypeParams() []string                    { return nil }
func (s stubType) IsStatic() bool                          { return false }
func (s stubType) HasConstructor([]reflect.Type) bool      { return true }
func (s stubType) Methods() []suite.MethodInfo             { return nil }
func (s stubType) MakeGenericType([]reflect.Type) (suite.TypeInfo, error) {
	return nil, assert.AnError
}

func newApplier(meta Meta) (*Applier, stubType) {
	registry := NewRegistry()
	registry.Register("Widget", meta)
	return &Applier{Registry: registry}, stubType{name: "Widget"}
}

func TestApplierUnregisteredType(t *testing.T) {
	applier := &Applier{Registry: NewRegistry()}
	s := suite.NewSuite(stubType{name: "Widget"})

	applier.Apply(s, s.Type)

	assert.Equal(t, suite.Runnable, s.RunState)
	assert.Zero(t, s.Properties.Len())
}

func TestApplierDecoratesSuite(t *testing.T) {
	applier, typ := newApplier(Meta{
		Description: "exercises the widget",
		Categories:  []string{"db", "slow"},
		Properties:  map[string][]any{"owner": {"storage-team"}},
	})
	s := suite.NewSuite(typ)

	applier.Apply(s, typ)

	assert.Equal(t, []any{"exercises the widget"}, s.Properties.Get(suite.PropertyDescription))
	assert.Equal(t, []any{"db", "slow"}, s.Properties.Get(suite.PropertyCategory))
	assert.Equal(t, []any{"storage-team"}, s.Properties.Get("owner"))
	assert.Equal(t, suite.Runnable, s.RunState)
}

func TestApplierRunStateOverride(t *testing.T) {
	applier, typ := newApplier(Meta{RunState: suite.Ignored, Reason: "quarantined"})

	s := suite.NewSuite(typ)
	applier.Apply(s, typ)
	assert.Equal(t, suite.Ignored, s.RunState)
	assert.Equal(t, "quarantined", s.SkipReason())

	// an invalid suite is never resurrected or re-labeled
	invalid := suite.NewSuite(typ)
	invalid.MakeNotRunnable("broken")
	applier.Apply(invalid, typ)
	assert.Equal(t, suite.NotRunnable, invalid.RunState)
	assert.Equal(t, "broken", invalid.SkipReason())
}

func TestApplierVersionRequirement(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		host       string
		wantState  suite.RunState
	}{
		{name: "met", constraint: ">= 1.20", host: "1.22.0", wantState: suite.Runnable},
		{name: "unmet", constraint: ">= 2.0", host: "1.22.0", wantState: suite.Skipped},
		{name: "invalid constraint is ignored", constraint: "not-semver", host: "1.22.0", wantState: suite.Runnable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			applier, typ := newApplier(Meta{Requires: &Requires{Version: tt.constraint}})
			applier.Version = tt.host

			s := suite.NewSuite(typ)
			applier.Apply(s, typ)

			assert.Equal(t, tt.wantState, s.RunState)
			if tt.wantState == suite.Skipped {
				assert.Contains(t, s.SkipReason(), tt.constraint)
			}
		})
	}
}

func TestApplierOSRequirement(t *testing.T) {
	applier, typ := newApplier(Meta{Requires: &Requires{OS: []string{"linux", "darwin"}}})
	applier.OS = "windows"

	s := suite.NewSuite(typ)
	applier.Apply(s, typ)

	require.Equal(t, suite.Skipped, s.RunState)
	assert.Contains(t, s.SkipReason(), "windows")
}

func TestRegistryDefault(t *testing.T) {
	Register("metadata_test.Sample", Meta{Description: "sample"})

	meta, ok := Lookup("metadata_test.Sample")
	require.True(t, ok)
	assert.Equal(t, "sample", meta.Description)
	assert.Contains(t, DefaultRegistry.List(), "metadata_test.Sample")
}
