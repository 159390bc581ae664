package main

import (
	"fmt"

	"github.com/flanksource/clicky"
	"github.com/spf13/cobra"

	"github.com/flanksource/docket/filters"
	"github.com/flanksource/docket/fixtures"
	"github.com/flanksource/docket/plan"
)

var (
	showWhere string
	showName  string
)

var showCmd = &cobra.Command{
	Use:          "show [plan-files...]",
	Short:        "Build the suites declared in the given plans and print them",
	Args:         cobra.MinimumNArgs(1),
	RunE:         runShow,
	SilenceUsage: true,
}

func runShow(cmd *cobra.Command, args []string) error {
	filter, err := showFilter()
	if err != nil {
		return err
	}

	docs, err := plan.Glob(args...)
	if err != nil {
		return err
	}

	builder := fixtures.NewBuilder(fixtures.BuilderOptions{})
	for _, doc := range docs {
		suites, err := doc.Build(builder)
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", doc.Path, err)
		}
		for _, s := range suites {
			if filter != nil {
				s = filters.Apply(s, filter)
				if len(s.Children) == 0 && !filter.Match(s) {
					continue
				}
			}
			fmt.Println(clicky.MustFormat(s))
		}
	}
	return nil
}

func showFilter() (filters.Filter, error) {
	var active []filters.Filter
	if showWhere != "" {
		selector, err := filters.NewSelector(showWhere)
		if err != nil {
			return nil, err
		}
		active = append(active, selector)
	}
	if showName != "" {
		name, err := filters.Name(showName)
		if err != nil {
			return nil, err
		}
		active = append(active, name)
	}
	if len(active) == 0 {
		return nil, nil
	}
	return filters.All(active...), nil
}

func init() {
	showCmd.Flags().StringVar(&showWhere, "where", "", "CEL expression selecting tests, e.g. 'runState == \"runnable\"'")
	showCmd.Flags().StringVar(&showName, "name", "", "Glob pattern selecting tests by name")
	rootCmd.AddCommand(showCmd)
}
