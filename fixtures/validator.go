package fixtures

import (
	"github.com/flanksource/docket/suite"
)

// Disqualification reasons recorded under suite.PropertySkipReason.
const (
	// ReasonUnresolvedTypeParams is recorded when a generic fixture's type
	// parameters could not be resolved from any source.
	ReasonUnresolvedTypeParams = "type contains unresolved type parameters; supply type arguments or constructor arguments from which they can be deduced"

	// ReasonNoConstructor is recorded when no constructor matches the
	// fixture's arguments.
	ReasonNoConstructor = "No suitable constructor was found"
)

// ValidateFixture checks that a constructed suite can be instantiated: its
// type must have no unresolved type parameters and, unless it is a static
// container, a constructor whose parameter types exactly match the runtime
// types of the recorded arguments. Failures are encoded on the suite itself;
// the check performs no I/O and does not instantiate anything.
func ValidateFixture(s *suite.Suite) {
	t := s.Type
	if t.ContainsTypeParams() {
		s.MakeNotRunnable(ReasonUnresolvedTypeParams)
		return
	}
	if t.IsStatic() {
		return
	}
	if !t.HasConstructor(suite.ArgTypes(s.Arguments)) {
		s.MakeNotRunnable(ReasonNoConstructor)
	}
}
