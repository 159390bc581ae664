// Package filters selects tests from constructed suites: CEL expressions
// over test attributes, glob patterns over names, and order-preserving
// pruning of suite trees.
package filters

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/flanksource/commons/logger"

	"github.com/flanksource/docket/suite"
)

// Filter decides whether a test stays in the selection.
type Filter interface {
	Match(t suite.Test) bool
}

// FilterFunc adapts a function to the Filter interface.
type FilterFunc func(t suite.Test) bool

func (f FilterFunc) Match(t suite.Test) bool {
	return f(t)
}

// Name matches tests whose name matches a doublestar glob pattern.
func Name(pattern string) (Filter, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid name pattern %q", pattern)
	}
	return FilterFunc(func(t suite.Test) bool {
		match, err := doublestar.Match(pattern, t.Info().Name)
		if err != nil {
			logger.Debugf("name pattern %q failed on %s: %v", pattern, t.Info().Name, err)
			return false
		}
		return match
	}), nil
}

// All matches tests that every given filter matches.
func All(filters ...Filter) Filter {
	return FilterFunc(func(t suite.Test) bool {
		for _, f := range filters {
			if !f.Match(t) {
				return false
			}
		}
		return true
	})
}

// Apply returns a copy of the suite keeping only the children the filter
// matches, in their original order. Nested suites are pruned recursively and
// dropped when left empty. The suite's own info is carried over unchanged.
func Apply(s *suite.Suite, f Filter) *suite.Suite {
	out := &suite.Suite{
		TestInfo:  s.TestInfo,
		Type:      s.Type,
		Arguments: s.Arguments,
	}
	for _, child := range s.Children {
		if nested, ok := child.(*suite.Suite); ok {
			pruned := Apply(nested, f)
			if len(pruned.Children) > 0 || f.Match(pruned) {
				out.Add(pruned)
			}
			continue
		}
		if f.Match(child) {
			out.Add(child)
		}
	}
	return out
}
