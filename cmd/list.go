package cmd

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "ls [PATH]",
	Short: "Lists the children of a namespace",
	Long: `Lists the immediate children of PATH, or of the root without PATH.

Entries are printed as-is; namespaces are printed with a trailing slash.
A name that is both an entry and a namespace is printed both ways.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeNames,
	RunE:              runList,
}

func runList(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting ls command")

	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	result, err := workflows.List(context.Background(), workflows.ListOptions{
		Common: common(),
		Path:   path,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, child := range result.Children {
		if child.HasValue {
			fmt.Fprintln(out, child.Name)
		}
		if child.HasChildren {
			fmt.Fprintln(out, ui.Dir.Sprint(child.Name+"/"))
		}
	}
	Logger.Debugf("Listed %d children", len(result.Children))
	return nil
}
