package cmd

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:               "rm NAME",
	Short:             "Deletes an entry",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNames,
	RunE:              runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting rm command")

	err := workflows.Remove(context.Background(), workflows.RemoveOptions{
		Common: common(),
		Name:   args[0],
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" Removed "+ui.Highlight.Sprint(args[0]))
	return nil
}
