package main

import (
	"fmt"

	"github.com/flanksource/clicky"
	"github.com/flanksource/commons/logger"
	"github.com/spf13/cobra"

	"github.com/flanksource/docket/fixtures"
	"github.com/flanksource/docket/plan"
	"github.com/flanksource/docket/suite"
)

var lintCmd = &cobra.Command{
	Use:          "lint [plan-files...]",
	Short:        "Build every fixture in the given plans and report the ones that cannot run",
	Args:         cobra.MinimumNArgs(1),
	RunE:         runLint,
	SilenceUsage: true,
}

func runLint(cmd *cobra.Command, args []string) error {
	docs, err := plan.Glob(args...)
	if err != nil {
		return err
	}

	builder := fixtures.NewBuilder(fixtures.BuilderOptions{})
	var summary suite.Summary
	for _, doc := range docs {
		suites, err := doc.Build(builder)
		if err != nil {
			return fmt.Errorf("failed to build %s: %w", doc.Path, err)
		}
		for _, s := range suites {
			fmt.Println(clicky.MustFormat(s))
			summary = summary.Add(s.Summary())
			if s.RunState == suite.NotRunnable {
				exitCode = 1
			}
		}
	}

	fmt.Println(clicky.MustFormat(summary))
	if exitCode != 0 {
		logger.Errorf("some fixtures are not runnable")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
