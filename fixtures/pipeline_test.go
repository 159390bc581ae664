package fixtures

import (
	"reflect"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/flanksource/docket/metadata"
	"github.com/flanksource/docket/suite"
)

var _ = Describe("Builder pipeline", func() {
	var b *Builder

	BeforeEach(func() {
		b = NewBuilder(BuilderOptions{})
	})

	Describe("run states", func() {
		It("starts suites runnable", func() {
			s := b.BuildFrom(calcType())
			Expect(s.RunState).To(Equal(suite.Runnable))
		})

		It("applies the data override before validating", func() {
			s := b.BuildFromData(calcType(), NewData().Explicit("load test"))
			Expect(s.RunState).To(Equal(suite.Explicit))
			Expect(s.SkipReason()).To(Equal("load test"))
		})

		It("keeps the not-runnable verdict over later decoration", func() {
			reg := metadata.NewRegistry()
			reg.Register("calc.Calculator", metadata.Meta{
				RunState: suite.Ignored,
				Reason:   "ignored by annotation",
			})
			withMeta := NewBuilder(BuilderOptions{Metadata: &metadata.Applier{Registry: reg}})

			s := withMeta.BuildFromData(calcType(), NewData(3.14))

			Expect(s.RunState).To(Equal(suite.NotRunnable))
			Expect(s.SkipReason()).To(Equal(ReasonNoConstructor))
		})
	})

	Describe("properties", func() {
		It("keeps duplicate values in order", func() {
			data := NewData().
				WithProperty("category", "slow").
				WithProperty("author", "qa").
				WithProperty("category", "slow")

			s := b.BuildFromData(calcType(), data)

			Expect(s.Properties.Keys()).To(Equal([]string{"category", "author"}))
			Expect(s.Properties.Get("category")).To(Equal([]any{"slow", "slow"}))
		})

		It("records a single disqualification reason", func() {
			s := b.BuildFromData(calcType(), NewData(3.14).Ignore("flaky"))

			Expect(s.Properties.Get(suite.PropertySkipReason)).To(HaveLen(1))
			Expect(s.SkipReason()).To(Equal(ReasonNoConstructor))
		})
	})

	Describe("generic resolution", func() {
		It("prefers explicit type arguments over the argument prefix", func() {
			open := &fakeType{
				name:        "Repo",
				typeParams:  []string{"T"},
				wantArgs:    []reflect.Type{reflect.TypeOf(0)},
				specialized: &fakeType{name: "Repo[int]"},
			}

			data := NewData(reflect.TypeOf("")).WithTypeArgs(reflect.TypeOf(0))
			s := b.BuildFromData(open, data)

			// the type-valued argument stays a constructor argument
			Expect(s.Name).To(HavePrefix("Repo[int]"))
			Expect(s.Arguments).To(HaveLen(1))
			Expect(s.Arguments[0]).To(Equal(reflect.TypeOf("")))
		})
	})
})
