package fixtures

import (
	"reflect"

	"github.com/flanksource/docket/suite"
)

// TestCaseBuilder recognizes fixture methods and builds test cases from them.
// Declining a method is part of the normal flow, not an error.
type TestCaseBuilder interface {
	// CanBuildFrom reports whether the method yields at least one test case
	CanBuildFrom(method suite.MethodInfo, parent *suite.Suite) bool

	// BuildFrom builds the test case for the method. A nil result means the
	// method contributes nothing.
	BuildFrom(method suite.MethodInfo, parent *suite.Suite) suite.Test
}

// TypeArgDeducer infers generic type arguments from constructor argument
// values when none were supplied explicitly.
type TypeArgDeducer interface {
	// TryDeduce returns the deduced type arguments, or false when the
	// arguments do not determine them unambiguously
	TryDeduce(t suite.TypeInfo, args []any) ([]reflect.Type, bool)
}

// MetadataApplier decorates a built suite from annotations registered for
// its type.
type MetadataApplier interface {
	// Apply decorates the suite from metadata registered for t. The builder
	// always passes the original descriptor, before generic specialization.
	Apply(s *suite.Suite, t suite.TypeInfo)
}

// NameRenderer renders the display name of a suite constructed with
// arguments. Render must be deterministic: equal inputs produce equal names.
type NameRenderer interface {
	Render(t suite.TypeInfo, args []any) string
}
