package suite

import (
	"strings"

	"github.com/flanksource/clicky"
	"github.com/flanksource/clicky/api"
	"github.com/flanksource/clicky/api/icons"
)

// RunState describes whether and how a test is eligible to run.
type RunState string

const (
	// NotRunnable marks a test that is invalid and can never run.
	NotRunnable RunState = "not_runnable"
	// Runnable marks a test that is eligible to run.
	Runnable RunState = "runnable"
	// Explicit marks a test that runs only when selected directly.
	Explicit RunState = "explicit"
	// Skipped marks a test excluded by its environment or requirements.
	Skipped RunState = "skipped"
	// Ignored marks a test excluded by its author.
	Ignored RunState = "ignored"
)

// String returns the string representation of the run state.
func (s RunState) String() string {
	return string(s)
}

func (s RunState) Pretty() api.Text {
	switch s {
	case NotRunnable:
		return clicky.Text("").Add(icons.Fail).Append(" NOT RUNNABLE", "text-red-600 font-bold")
	case Runnable:
		return clicky.Text("").Add(icons.Pass).Append(" RUNNABLE", "text-green-600")
	case Explicit:
		return clicky.Text("").Add(icons.Info).Append(" EXPLICIT", "text-blue-600 font-medium")
	case Skipped:
		return clicky.Text("").Add(icons.Skip).Append(" SKIPPED", "text-yellow-600")
	case Ignored:
		return clicky.Text("").Add(icons.Warning).Append(" IGNORED", "text-orange-600")
	default:
		return clicky.Text("").Add(icons.Unknown).Append(" "+strings.ToUpper(string(s)), "text-gray-600")
	}
}

func (s RunState) style() string {
	switch s {
	case NotRunnable:
		return "text-red-600"
	case Skipped:
		return "text-yellow-600"
	case Ignored:
		return "text-orange-600"
	case Explicit:
		return "text-blue-600"
	default:
		return ""
	}
}
