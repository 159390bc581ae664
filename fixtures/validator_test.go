package fixtures

import (
	"reflect"
	"testing"

	"github.com/flanksource/docket/suite"
)

func TestValidateFixture(t *testing.T) {
	intCtor := [][]reflect.Type{{reflect.TypeOf(0)}}

	tests := []struct {
		name       string
		fixture    *fakeType
		args       []any
		wantState  suite.RunState
		wantReason string
	}{
		{
			name:      "zero arg constructor",
			fixture:   &fakeType{name: "Fixture", ctors: [][]reflect.Type{{}}},
			wantState: suite.Runnable,
		},
		{
			name:      "matching constructor",
			fixture:   &fakeType{name: "Fixture", ctors: intCtor},
			args:      []any{42},
			wantState: suite.Runnable,
		},
		{
			name:       "no matching constructor",
			fixture:    &fakeType{name: "Fixture", ctors: intCtor},
			args:       []any{"wrong"},
			wantState:  suite.NotRunnable,
			wantReason: ReasonNoConstructor,
		},
		{
			name:       "argument count mismatch",
			fixture:    &fakeType{name: "Fixture", ctors: intCtor},
			args:       []any{42, 43},
			wantState:  suite.NotRunnable,
			wantReason: ReasonNoConstructor,
		},
		{
			name:       "nil argument matches no parameter",
			fixture:    &fakeType{name: "Fixture", ctors: intCtor},
			args:       []any{nil},
			wantState:  suite.NotRunnable,
			wantReason: ReasonNoConstructor,
		},
		{
			name:      "static container skips constructor check",
			fixture:   &fakeType{name: "Fixture", static: true},
			args:      []any{"anything"},
			wantState: suite.Runnable,
		},
		{
			name:       "unresolved type parameters",
			fixture:    &fakeType{name: "Fixture", typeParams: []string{"T"}},
			wantState:  suite.NotRunnable,
			wantReason: ReasonUnresolvedTypeParams,
		},
		{
			name:       "unresolved type parameters beat constructor check",
			fixture:    &fakeType{name: "Fixture", typeParams: []string{"T"}, static: true},
			wantState:  suite.NotRunnable,
			wantReason: ReasonUnresolvedTypeParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := suite.NewSuite(tt.fixture)
			s.Arguments = tt.args

			ValidateFixture(s)

			if s.RunState != tt.wantState {
				t.Errorf("RunState = %s, want %s", s.RunState, tt.wantState)
			}
			if got := s.SkipReason(); got != tt.wantReason {
				t.Errorf("SkipReason = %q, want %q", got, tt.wantReason)
			}
		})
	}
}

func TestValidateFixtureLeavesValidSuiteUntouched(t *testing.T) {
	s := suite.NewSuite(&fakeType{name: "Fixture", ctors: [][]reflect.Type{{}}})
	s.Properties.Add("category", "fast")

	ValidateFixture(s)

	if s.RunState != suite.Runnable {
		t.Errorf("RunState = %s, want %s", s.RunState, suite.Runnable)
	}
	if got := s.Properties.Keys(); len(got) != 1 {
		t.Errorf("Keys = %v, want just category", got)
	}
}
