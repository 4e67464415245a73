package cmd

import (
	"context"
	"fmt"

	"github.com/kyrias/mine/internal/entry"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var showTag string

func init() {
	showCmd.Flags().StringVarP(&showTag, "tag", "t", "", "print only the value of this tag")
}

// resetShowCommandState resets the show command's global state for testing.
func resetShowCommandState() {
	showTag = ""
}

var showCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Decrypts and prints an entry",
	Long: `Prints the password of an entry on the first line, followed by every
other tag as "tag => value", sorted by tag.

With --tag only that tag's value is printed, which makes it easy to pipe.`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeNames,
	RunE:              runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting show command")

	result, err := workflows.Show(context.Background(), workflows.ShowOptions{
		Common: common(),
		Name:   args[0],
		Tag:    showTag,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showTag != "" {
		fmt.Fprintln(out, result.Value)
		return nil
	}

	printEntry(cmd, result.Entry)
	return nil
}

func printEntry(cmd *cobra.Command, e *entry.Entry) {
	out := cmd.OutOrStdout()
	if password, ok := e.Password(); ok {
		fmt.Fprintln(out, password)
	}
	for _, tag := range e.Tags() {
		if tag == entry.PasswordTag {
			continue
		}
		value, _ := e.Get(tag)
		fmt.Fprintf(out, "%s => %s\n", tag, value)
	}
}
