package fixtures

import (
	"reflect"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/docket/metadata"
	"github.com/flanksource/docket/suite"
	"github.com/flanksource/docket/typeref"
)

// BuilderOptions configures a Builder. Nil collaborators fall back to the
// defaults: the Test-prefix case builder, the typeref deducer, the default
// metadata registry and Type(args) display names.
type BuilderOptions struct {
	// Cases recognizes fixture methods and builds test cases from them
	Cases TestCaseBuilder

	// Deducer infers type arguments from constructor argument values
	Deducer TypeArgDeducer

	// Metadata applies registered type-level annotations to built suites
	Metadata MetadataApplier

	// Namer renders display names for suites built with arguments
	Namer NameRenderer
}

// Builder constructs suites from type descriptors and optional fixture data.
// Every build returns a suite, runnable or not; disqualification is encoded
// in the suite's run state and skip reason, never raised.
//
// A Builder is immutable after construction and safe for concurrent use when
// its collaborators are.
type Builder struct {
	cases    TestCaseBuilder
	deducer  TypeArgDeducer
	metadata MetadataApplier
	namer    NameRenderer
}

// NewBuilder creates a Builder, filling unset collaborators with defaults.
func NewBuilder(opts BuilderOptions) *Builder {
	if opts.Cases == nil {
		opts.Cases = NewCaseBuilder()
	}
	if opts.Deducer == nil {
		opts.Deducer = typeref.NewDeducer()
	}
	if opts.Metadata == nil {
		opts.Metadata = metadata.NewApplier()
	}
	if opts.Namer == nil {
		opts.Namer = DefaultRenderer{}
	}
	return &Builder{
		cases:    opts.Cases,
		deducer:  opts.Deducer,
		metadata: opts.Metadata,
		namer:    opts.Namer,
	}
}

// BuildFrom constructs the suite for a type with no fixture data: no
// constructor arguments, no type arguments, no overrides.
func (b *Builder) BuildFrom(t suite.TypeInfo) *suite.Suite {
	s := suite.NewSuite(t)
	if s.RunState != suite.NotRunnable {
		ValidateFixture(s)
	}
	b.metadata.Apply(s, t)
	b.addTestCases(s)
	return s
}

// BuildFromData constructs the suite for a type from fixture data. data must
// not be nil; passing nil is a caller bug and panics. All fixture-level
// problems short of that are encoded on the returned suite.
func (b *Builder) BuildFromData(t suite.TypeInfo, data *Data) *suite.Suite {
	if data == nil {
		panic("fixtures: nil fixture data")
	}

	original := t
	args := data.Arguments
	if t.ContainsTypeParams() {
		t, args = b.resolveTypeArgs(t, data.TypeArgs, args)
	}

	s := suite.NewSuite(t)
	s.Arguments = args

	if len(args) > 0 {
		s.Name = b.namer.Render(t, args)
		if ns := t.Namespace(); ns != "" {
			s.FullName = ns + "." + s.Name
		} else {
			s.FullName = s.Name
		}
	}

	if data.RunState != "" && s.RunState != suite.NotRunnable {
		s.RunState = data.RunState
	}

	if data.Properties != nil {
		s.Properties.Merge(data.Properties)
	}

	if s.RunState != suite.NotRunnable {
		ValidateFixture(s)
	}

	b.metadata.Apply(s, original)
	b.addTestCases(s)
	return s
}

// resolveTypeArgs picks type arguments in precedence order: explicit on the
// data, then a maximal leading run of type-valued arguments, then deduction
// from the remaining argument values. When a non-empty list is found the
// descriptor is specialized; when no source yields one, or specialization
// fails, the descriptor stays open for the validator to report.
func (b *Builder) resolveTypeArgs(t suite.TypeInfo, typeArgs []reflect.Type, args []any) (suite.TypeInfo, []any) {
	if len(typeArgs) == 0 {
		var lead []reflect.Type
		for _, arg := range args {
			rt, ok := arg.(reflect.Type)
			if !ok {
				break
			}
			lead = append(lead, rt)
		}
		if len(lead) > 0 {
			typeArgs = lead
			args = args[len(lead):]
			logger.V(4).Infof("%s: using %d leading type-valued argument(s) as type arguments", t.Name(), len(lead))
		}
	}

	if len(typeArgs) == 0 {
		if deduced, ok := b.deducer.TryDeduce(t, args); ok {
			typeArgs = deduced
			logger.V(4).Infof("%s: deduced type arguments from constructor arguments", t.Name())
		}
	}

	if len(typeArgs) == 0 {
		return t, args
	}

	specialized, err := t.MakeGenericType(typeArgs)
	if err != nil {
		logger.V(4).Infof("%s: cannot specialize: %v", t.Name(), err)
		return t, args
	}
	return specialized, args
}

// addTestCases populates the suite with one entry per recognized method, in
// the descriptor's enumeration order.
func (b *Builder) addTestCases(s *suite.Suite) {
	if s.Type.ContainsTypeParams() {
		s.MakeNotRunnable(ReasonUnresolvedTypeParams)
		return
	}
	for _, method := range s.Type.Methods() {
		if !b.cases.CanBuildFrom(method, s) {
			continue
		}
		if test := b.cases.BuildFrom(method, s); test != nil {
			s.Add(test)
		}
	}
}
