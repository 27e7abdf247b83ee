package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <base> <head>",
	Short: "List the commits between two refs",
	Long: `List the commits reachable from head but not from base (base...head),
in the order GitHub returns them.

Examples:
  ghtag compare v1.0.0 v1.1.0 --repository owner/repo
  ghtag compare v1.0.0 main --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

func init() {
	compareCmd.Flags().BoolVar(&jsonOutput, "json", false, "Print JSON instead of a table")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	tagger, err := newTagger()
	if err != nil {
		return err
	}

	base, head := args[0], args[1]
	commits, err := tagger.CompareCommits(cmd.Context(), base, head)
	if err != nil {
		return fmt.Errorf("failed to compare %s...%s: %w", base, head, err)
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), commits)
	}
	return printCommits(cmd.OutOrStdout(), commits)
}
