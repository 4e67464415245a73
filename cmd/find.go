package cmd

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var findCmd = &cobra.Command{
	Use:   "find PATTERN",
	Short: "Finds entries whose names match a glob",
	Long: `Prints every entry name matching PATTERN.

"*" matches within one segment, "**" matches across segments.

Examples:
  mine find 'work/*'      # Direct children of work
  mine find '**/email'    # Every entry named email
  mine find '**'          # Everything`,
	Args: cobra.ExactArgs(1),
	RunE: runFind,
}

func runFind(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting find command")

	result, err := workflows.Find(context.Background(), workflows.FindOptions{
		Common:  common(),
		Pattern: args[0],
	})
	if err != nil {
		return err
	}

	for _, name := range result.Matches {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	Logger.Infof("%d of %d entries matched", len(result.Matches), result.Searched)
	return nil
}
