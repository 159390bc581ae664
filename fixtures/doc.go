// Package fixtures constructs test suites from fixture types: a type
// descriptor plus optional fixture data goes in, a fully populated suite
// comes out, runnable or not.
//
// Construction never fails. A fixture that cannot run (unresolved generic
// parameters, no matching constructor) still yields a complete suite marked
// not runnable, carrying the reason in its property bag. Downstream tooling
// can therefore always render, count and filter what was found.
//
// # Building
//
// Build a suite straight from a type:
//
//	builder := fixtures.NewBuilder(fixtures.BuilderOptions{})
//	s := builder.BuildFrom(typeref.Of[Calculator]())
//
// Or parameterize construction with fixture data:
//
//	data := fixtures.NewData("dsn", 10).WithProperty("category", "db")
//	s := builder.BuildFromData(typeref.Of[Repo](NewRepo), data)
//
// # Generic Fixtures
//
// Generic fixture types are specialized from three sources, in order:
// explicit type arguments on the data, a leading run of reflect.Type values
// in the arguments, and deduction from the remaining argument values:
//
//	repo := typeref.NewGeneric("Repo", "T").
//	    Instantiate(typeref.Of[RepoOfInt](NewRepoOfInt), reflect.TypeOf(0))
//
//	// all three build Repo[int]:
//	builder.BuildFromData(repo, fixtures.NewData().WithTypeArgs(reflect.TypeOf(0)))
//	builder.BuildFromData(repo, fixtures.NewData(reflect.TypeOf(0), "seed"))
//	builder.BuildFromData(repo, fixtures.NewData(42))
//
// A generic fixture whose parameters cannot be resolved is marked not
// runnable rather than rejected.
//
// # Test Cases
//
// Methods become test cases through a TestCaseBuilder. The default
// recognizes parameterless methods named Test*; supply your own to change
// the convention:
//
//	builder := fixtures.NewBuilder(fixtures.BuilderOptions{
//	    Cases: &fixtures.CaseBuilder{Prefix: "Check"},
//	})
//
// # Display Names
//
// Suites built with arguments are named Type(arg1,arg2) by the default
// renderer. TemplateRenderer renders names from a gomplate template instead:
//
//	fixtures.TemplateRenderer{Template: "{{.type}} seeded with {{len .args}} args"}
//
// See also: github.com/flanksource/docket/plan for declarative fixture
// documents and github.com/flanksource/docket/metadata for type-level
// annotations.
package fixtures
