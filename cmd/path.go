package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPathCmd creates the Cobra command that prints the root-to-suite
// hierarchy path.
func newPathCmd() *cobra.Command {
	var (
		suiteID   int64
		separator string
	)

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the hierarchy path of a suite",
		Long: `Prints the titles from the root suite down to the given suite. An
unknown suite id prints a single fallback entry instead of failing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := buildEngine(cmd)
			if err != nil {
				return err
			}

			entries, err := eng.agg.SuiteHierarchyPath(cmd.Context(), eng.project, suiteID)
			if err != nil {
				return err
			}

			if separator == "" {
				separator = eng.separator
			}
			fmt.Fprint(cmd.OutOrStdout(), eng.formatter.FormatPath(entries, separator))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&suiteID, "suite", "s", 0, "Suite id to resolve")
	cmd.Flags().StringVar(&separator, "separator", "", `Path separator (default " > ")`)
	_ = cmd.MarkFlagRequired("suite")
	return cmd
}
