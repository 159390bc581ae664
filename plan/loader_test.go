package plan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const calculatorPlan = `
types:
  - name: Calculator
    namespace: calc
    constructors:
      - params: [string, int]
    methods:
      - name: TestAdd
      - name: TestSubtract
      - name: helper
        params: 2
fixtures:
  - type: Calculator
    args:
      - "dsn"
      - 10
`

func TestLoadBytes(t *testing.T) {
	doc, err := LoadBytes([]byte(calculatorPlan))
	require.NoError(t, err)

	want := &Document{
		Types: []TypeDoc{
			{
				Name:         "Calculator",
				Namespace:    "calc",
				Constructors: []CtorDoc{{Params: []string{"string", "int"}}},
				Methods: []MethodDoc{
					{Name: "TestAdd"},
					{Name: "TestSubtract"},
					{Name: "helper", Params: 2},
				},
			},
		},
		Fixtures: []Fixture{
			{Type: "Calculator", Args: []Arg{{value: "dsn"}, {value: int64(10)}}},
		},
	}
	if diff := cmp.Diff(want, doc, cmp.AllowUnexported(Arg{}), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadBytesArgForms(t *testing.T) {
	doc, err := LoadBytes([]byte(`
types:
  - name: Widget
fixtures:
  - type: Widget
    args:
      - {type: int}
      - 3.5
      - true
      - "text"
`))
	require.NoError(t, err)

	args := doc.Fixtures[0].Args
	require.Len(t, args, 4)
	assert.Equal(t, "int", args[0].TypeRef())
	assert.Equal(t, float64(3.5), args[1].Value())
	assert.Equal(t, true, args[2].Value())
	assert.Equal(t, "text", args[3].Value())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing type name",
			yaml:    "types:\n  - namespace: x\n",
			wantErr: "missing name",
		},
		{
			name:    "duplicate type",
			yaml:    "types:\n  - name: A\n  - name: A\n",
			wantErr: `type "A" declared twice`,
		},
		{
			name:    "unknown constructor scalar",
			yaml:    "types:\n  - name: A\n    constructors:\n      - params: [complex]\n",
			wantErr: `unknown scalar type "complex"`,
		},
		{
			name:    "fixture for undeclared type",
			yaml:    "types:\n  - name: A\nfixtures:\n  - type: B\n",
			wantErr: `undeclared type "B"`,
		},
		{
			name:    "instantiation without type params",
			yaml:    "types:\n  - name: A\n    instantiations:\n      - typeArgs: [int]\n        type: A\n",
			wantErr: "no type parameters",
		},
		{
			name: "instantiation arity mismatch",
			yaml: "types:\n  - name: A\n    typeParams: [T]\n    instantiations:\n" +
				"      - typeArgs: [int, string]\n        type: A\n",
			wantErr: "2 type argument(s) for 1 parameter(s)",
		},
		{
			name: "instantiation references undeclared type",
			yaml: "types:\n  - name: A\n    typeParams: [T]\n    instantiations:\n" +
				"      - typeArgs: [int]\n        type: B\n",
			wantErr: `undeclared type "B"`,
		},
		{
			name:    "unknown run state",
			yaml:    "types:\n  - name: A\nfixtures:\n  - type: A\n    runState: paused\n",
			wantErr: `unknown run state "paused"`,
		},
		{
			name:    "unknown type reference argument",
			yaml:    "types:\n  - name: A\nfixtures:\n  - type: A\n    args:\n      - {type: rune}\n",
			wantErr: `unknown scalar type "rune"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBytes([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte(calculatorPlan), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("types:\n  - name: Widget\n"), 0o644))

	docs, err := Glob(filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, filepath.Join(dir, "a.yaml"), docs[0].Path)
	assert.Equal(t, filepath.Join(dir, "b.yaml"), docs[1].Path)
}

func TestGlobNoMatches(t *testing.T) {
	_, err := Glob(filepath.Join(t.TempDir(), "*.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no plan files match")
}
