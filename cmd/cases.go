package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCasesCmd creates the Cobra command that lists test cases under a
// suite or root suite.
func newCasesCmd() *cobra.Command {
	var (
		suiteID int64
		byRoot  bool
	)

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List test cases under a suite",
		Long: `Lists every test case whose immediate suite is the given suite, or,
with --root, every test case anywhere under the given root suite.
Test cases whose suite is missing from the snapshot are reported as
orphaned and excluded from root matching.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(cmd)
			if err != nil {
				return err
			}

			cases, err := eng.agg.AllTestCasesUnderSuite(cmd.Context(), eng.project, suiteID, byRoot)
			if err != nil {
				return err
			}

			cases, err = eng.agg.EnrichTestCases(cmd.Context(), eng.project, cases)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), eng.formatter.FormatTestCases(cases))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&suiteID, "suite", "s", 0, "Suite id to match")
	cmd.Flags().BoolVar(&byRoot, "root", false, "Match by resolved root suite instead of immediate suite")
	_ = cmd.MarkFlagRequired("suite")
	return cmd
}
