package filters

import (
	"fmt"

	"github.com/flanksource/commons/logger"
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/ext"

	"github.com/flanksource/docket/suite"
)

// Selector matches tests with a compiled CEL expression. The expression sees
//
//	name       string
//	fullName   string
//	runState   string
//	properties map[string][]string
//
// for example: runState == "runnable" && "db" in properties["category"].
type Selector struct {
	expression string
	program    cel.Program
}

// NewSelector compiles a CEL expression into a Selector.
func NewSelector(expression string) (*Selector, error) {
	env, err := cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("fullName", cel.StringType),
		cel.Variable("runState", cel.StringType),
		cel.Variable("properties", cel.MapType(cel.StringType, cel.ListType(cel.StringType))),
		ext.Strings(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile selector %q: %w", expression, issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program: %w", err)
	}

	return &Selector{expression: expression, program: program}, nil
}

// Match evaluates the expression against the test. Evaluation errors are
// logged and count as no match.
func (s *Selector) Match(t suite.Test) bool {
	info := t.Info()

	properties := make(map[string][]string)
	for _, key := range info.Properties.Keys() {
		properties[key] = info.Properties.Strings(key)
	}

	result, _, err := s.program.Eval(map[string]any{
		"name":       info.Name,
		"fullName":   info.FullName,
		"runState":   info.RunState.String(),
		"properties": properties,
	})
	if err != nil {
		logger.Debugf("selector %q failed on %s: %v", s.expression, info.Name, err)
		return false
	}

	boolVal, ok := result.(types.Bool)
	return ok && boolVal == types.True
}

// String returns the selector's expression.
func (s *Selector) String() string {
	return s.expression
}
