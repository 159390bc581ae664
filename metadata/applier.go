package metadata

import (
	"fmt"
	"runtime"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"

	"github.com/flanksource/docket/suite"
)

// Applier decorates built suites from a Registry. The zero value reads the
// default registry and checks requirements against the running Go version
// and operating system.
type Applier struct {
	Registry *Registry

	// Version is the host version requirement checks run against, the
	// normalized runtime.Version() when empty
	Version string

	// OS overrides runtime.GOOS for requirement checks
	OS string
}

// NewApplier creates an Applier backed by the default registry.
func NewApplier() *Applier {
	return &Applier{}
}

func (a *Applier) registry() *Registry {
	if a.Registry != nil {
		return a.Registry
	}
	return DefaultRegistry
}

// Apply looks up annotations under the type's full name and decorates the
// suite: description and categories become properties, the run-state
// override applies unless the suite is already not runnable, and unmet
// requirements mark it skipped.
func (a *Applier) Apply(s *suite.Suite, t suite.TypeInfo) {
	meta, ok := a.registry().Lookup(t.FullName())
	if !ok {
		return
	}

	if meta.Description != "" {
		s.Properties.Set(suite.PropertyDescription, meta.Description)
	}
	for _, category := range meta.Categories {
		s.Properties.Add(suite.PropertyCategory, category)
	}

	keys := lo.Keys(meta.Properties)
	sort.Strings(keys)
	for _, key := range keys {
		for _, value := range meta.Properties[key] {
			s.Properties.Add(key, value)
		}
	}

	if meta.RunState != "" && s.RunState != suite.NotRunnable {
		s.RunState = meta.RunState
		if meta.Reason != "" {
			s.Properties.Set(suite.PropertySkipReason, meta.Reason)
		}
	}

	a.checkRequires(s, meta.Requires)
}

func (a *Applier) checkRequires(s *suite.Suite, req *Requires) {
	if req == nil {
		return
	}

	if req.Version != "" {
		constraint, err := semver.NewConstraint(req.Version)
		if err != nil {
			logger.Debugf("invalid version requirement %q for %s: %v", req.Version, s.Name, err)
		} else if host, err := semver.NewVersion(a.hostVersion()); err == nil && !constraint.Check(host) {
			s.MarkSkipped(fmt.Sprintf("requires version %s, host is %s", req.Version, a.hostVersion()))
			return
		}
	}

	if len(req.OS) > 0 {
		os := a.hostOS()
		if !lo.Contains(req.OS, os) {
			s.MarkSkipped(fmt.Sprintf("requires one of %s, host is %s", strings.Join(req.OS, ", "), os))
		}
	}
}

func (a *Applier) hostVersion() string {
	if a.Version != "" {
		return a.Version
	}
	return strings.TrimPrefix(runtime.Version(), "go")
}

func (a *Applier) hostOS() string {
	if a.OS != "" {
		return a.OS
	}
	return runtime.GOOS
}
