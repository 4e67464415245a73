package cmd

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var setTagCmd = &cobra.Command{
	Use:   "set-tag NAME TAG VALUE",
	Short: "Adds or updates a tag of an entry",
	Long: `Sets TAG to VALUE on an existing entry. The entry is re-encrypted and
written back in place.

Examples:
  mine set-tag work/email user alice@example.com
  mine set-tag work/email password n3w-s3cret`,
	Args:              cobra.ExactArgs(3),
	ValidArgsFunction: completeNames,
	RunE:              runSetTag,
}

func runSetTag(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting set-tag command")

	result, err := workflows.SetTag(context.Background(), workflows.SetTagOptions{
		Common: common(),
		Name:   args[0],
		Tag:    args[1],
		Value:  args[2],
	})
	if err != nil {
		return err
	}

	verb := "Updated"
	if result.Created {
		verb = "Added"
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" "+verb+" tag "+ui.Highlight.Sprint(args[1])+" on "+ui.Highlight.Sprint(args[0]))
	return nil
}
