package fixtures

import (
	"strings"

	"github.com/flanksource/docket/suite"
)

// DefaultPrefix is the method name prefix the default case builder
// recognizes.
const DefaultPrefix = "Test"

// CaseBuilder is the default test-case builder: a method becomes a test case
// when its name carries the configured prefix and, if the method reports a
// parameter count, it takes no parameters.
type CaseBuilder struct {
	// Prefix is the method name prefix to recognize, DefaultPrefix when empty.
	Prefix string
}

// NewCaseBuilder creates a CaseBuilder recognizing the Test prefix.
func NewCaseBuilder() *CaseBuilder {
	return &CaseBuilder{Prefix: DefaultPrefix}
}

func (c *CaseBuilder) prefix() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}

func (c *CaseBuilder) CanBuildFrom(method suite.MethodInfo, _ *suite.Suite) bool {
	if !strings.HasPrefix(method.Name(), c.prefix()) {
		return false
	}
	if sig, ok := method.(interface{ ParamCount() int }); ok && sig.ParamCount() > 0 {
		return false
	}
	return true
}

func (c *CaseBuilder) BuildFrom(method suite.MethodInfo, parent *suite.Suite) suite.Test {
	return suite.NewCase(method.Name(), parent.FullName+"."+method.Name())
}
