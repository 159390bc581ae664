// Package suite holds the domain model for constructed test suites: the
// suite/case tree, run states, property bags and the descriptor contracts
// the construction engine consumes.
package suite

import (
	"fmt"

	"github.com/flanksource/clicky"
	"github.com/flanksource/clicky/api"
	"github.com/flanksource/clicky/api/icons"
)

// TestInfo carries the name, state and property data shared by suites and
// test cases.
type TestInfo struct {
	Name       string       `json:"name,omitempty"`
	FullName   string       `json:"full_name,omitempty"`
	RunState   RunState     `json:"run_state,omitempty"`
	Properties *PropertyBag `json:"properties,omitempty"`
}

// Info returns the test's mutable name, state and property data.
func (t *TestInfo) Info() *TestInfo {
	return t
}

// MakeNotRunnable marks the test not runnable and records the reason.
// NotRunnable is final: the construction pipeline never moves a test out of
// it once set.
func (t *TestInfo) MakeNotRunnable(reason string) {
	t.RunState = NotRunnable
	t.Properties.Set(PropertySkipReason, reason)
}

// MarkSkipped marks the test skipped and records the reason, unless the test
// is already not runnable.
func (t *TestInfo) MarkSkipped(reason string) {
	if t.RunState == NotRunnable {
		return
	}
	t.RunState = Skipped
	t.Properties.Set(PropertySkipReason, reason)
}

// SkipReason returns the recorded reason, if any.
func (t *TestInfo) SkipReason() string {
	if reason, ok := t.Properties.First(PropertySkipReason); ok {
		return fmt.Sprint(reason)
	}
	return ""
}

// Test is the common handle for anything a suite can contain.
type Test interface {
	// Info returns the test's mutable name, state and property data
	Info() *TestInfo
}

// Suite is a constructed fixture suite: a type bound to optional constructor
// arguments, holding the test cases discovered on it. Suites are always
// constructed, even when not runnable; disqualification is encoded in the
// run state and skip reason.
type Suite struct {
	TestInfo
	Type      TypeInfo `json:"-"`
	Arguments []any    `json:"arguments,omitempty"`
	Children  []Test   `json:"children,omitempty"`
}

// NewSuite creates a suite bound to t, named after it, with no arguments and
// an empty property bag.
func NewSuite(t TypeInfo) *Suite {
	return &Suite{
		TestInfo: TestInfo{
			Name:       t.Name(),
			FullName:   t.FullName(),
			RunState:   Runnable,
			Properties: NewPropertyBag(),
		},
		Type: t,
	}
}

// Add appends a test to the suite, preserving insertion order.
func (s *Suite) Add(test Test) {
	s.Children = append(s.Children, test)
}

// Summary counts the suite's tests by run state.
func (s *Suite) Summary() Summary {
	var summary Summary
	for _, child := range s.Children {
		if nested, ok := child.(*Suite); ok {
			summary = summary.Add(nested.Summary())
			continue
		}
		summary = summary.Add(stateSummary(child.Info().RunState))
	}
	return summary
}

func (s *Suite) GetChildren() []api.TreeNode {
	var children []api.TreeNode
	for _, child := range s.Children {
		if node, ok := child.(api.TreeNode); ok {
			children = append(children, node)
		}
	}
	return children
}

func (s *Suite) Pretty() api.Text {
	t := clicky.Text("")
	switch s.RunState {
	case NotRunnable:
		t = t.Add(icons.Fail)
	case Skipped, Ignored:
		t = t.Add(icons.Skip)
	default:
		t = t.Add(icons.Pass)
	}
	t = t.Append(" ", "").Append(s.Name, "bold wrap-space", s.RunState.style())
	if len(s.Children) > 0 {
		t = t.Append(fmt.Sprintf("(%d tests)", len(s.Children)), "text-muted")
	}
	if reason := s.SkipReason(); reason != "" {
		t = t.Space().Append(reason, s.RunState.style())
	}
	return t
}

// Case is a single test case built from a fixture method.
type Case struct {
	TestInfo
	MethodName string `json:"method_name,omitempty"`
}

// NewCase creates a runnable case with an empty property bag.
func NewCase(name, fullName string) *Case {
	return &Case{
		TestInfo: TestInfo{
			Name:       name,
			FullName:   fullName,
			RunState:   Runnable,
			Properties: NewPropertyBag(),
		},
		MethodName: name,
	}
}

func (c *Case) GetChildren() []api.TreeNode {
	return nil
}

func (c *Case) Pretty() api.Text {
	t := clicky.Text("")
	switch c.RunState {
	case NotRunnable:
		t = t.Add(icons.Fail)
	case Skipped, Ignored:
		t = t.Add(icons.Skip)
	default:
		t = t.Add(icons.Pass)
	}
	t = t.Append(" ", "").Append(c.Name, "wrap-space", c.RunState.style())
	if reason := c.SkipReason(); reason != "" {
		t = t.Space().Append(reason, "text-muted")
	}
	return t
}

// Summary aggregates test counts by run state.
type Summary struct {
	Total       int `json:"total"`
	Runnable    int `json:"runnable,omitempty"`
	NotRunnable int `json:"not_runnable,omitempty"`
	Explicit    int `json:"explicit,omitempty"`
	Skipped     int `json:"skipped,omitempty"`
	Ignored     int `json:"ignored,omitempty"`
}

func stateSummary(state RunState) Summary {
	summary := Summary{Total: 1}
	switch state {
	case NotRunnable:
		summary.NotRunnable = 1
	case Explicit:
		summary.Explicit = 1
	case Skipped:
		summary.Skipped = 1
	case Ignored:
		summary.Ignored = 1
	default:
		summary.Runnable = 1
	}
	return summary
}

func (s Summary) Add(other Summary) Summary {
	return Summary{
		Total:       s.Total + other.Total,
		Runnable:    s.Runnable + other.Runnable,
		NotRunnable: s.NotRunnable + other.NotRunnable,
		Explicit:    s.Explicit + other.Explicit,
		Skipped:     s.Skipped + other.Skipped,
		Ignored:     s.Ignored + other.Ignored,
	}
}

func (s Summary) Pretty() api.Text {
	t := clicky.Text("")
	if s.Runnable > 0 {
		t = t.Add(clicky.KeyValue(" runnable", s.Runnable, "text-green-500")).Append(" ")
	}
	if s.NotRunnable > 0 {
		t = t.Add(clicky.KeyValue(" not runnable", s.NotRunnable, "text-red-500")).Append(" ")
	}
	if s.Explicit > 0 {
		t = t.Add(clicky.KeyValue(" explicit", s.Explicit, "text-blue-500")).Append(" ")
	}
	if s.Skipped > 0 {
		t = t.Add(clicky.KeyValue(" skipped", s.Skipped, "text-yellow-500")).Append(" ")
	}
	if s.Ignored > 0 {
		t = t.Add(clicky.KeyValue(" ignored", s.Ignored, "text-orange-500")).Append(" ")
	}
	t = t.Add(clicky.KeyValue(" total", s.Total, "muted"))
	return t
}
