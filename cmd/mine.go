package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	logger "github.com/kyrias/mine/internal/logging"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	MineCmd = &cobra.Command{
		Use:   "mine",
		Short: "mine - a local secret store",
		Long: `mine keeps secrets in a local, encrypted store.

Each secret is an entry of tags under a slash-separated name like
"work/email". Names are never written to disk in the clear: every entry
is stored in a file with a random name, and an index maps names to files.

Examples:
  mine init                          # Create a new store
  mine insert work/email             # Prompt for a secret and store it
  echo hunter2 | mine insert db      # Store a secret from stdin
  mine show work/email               # Print the secret and its tags
  mine set-tag work/email user alice # Attach a tag
  mine ls work                       # List a namespace
  mine find '**/email'               # Search names`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
				Out:     cmd.ErrOrStderr(),
			}
			Logger.Debugf("Initializing %s with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
		},
		Run: func(cmd *cobra.Command, args []string) {
			banner := figure.NewColorFigure("mine", "alligator2", "green", true)
			fmt.Fprintln(cmd.OutOrStdout(), banner.String())
			_ = cmd.Help()
		},
	}
)

func init() {
	MineCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	MineCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	MineCmd.AddCommand(initCmd)
	MineCmd.AddCommand(insertCmd)
	MineCmd.AddCommand(showCmd)
	MineCmd.AddCommand(setTagCmd)
	MineCmd.AddCommand(removeCmd)
	MineCmd.AddCommand(listCmd)
	MineCmd.AddCommand(findCmd)
	MineCmd.AddCommand(checkCmd)
	MineCmd.AddCommand(logCmd)
}

// common returns the options every workflow shares.
func common() workflows.Common {
	return workflows.Common{Log: Logger}
}

// Helper functions for testing

// GetMineCmd returns the MineCmd for testing.
func GetMineCmd() *cobra.Command {
	return MineCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	resetShowCommandState()
	resetLogCommandState()
	resetCobraFlagState(MineCmd)
}

// resetCobraFlagState clears Changed on every flag so a reused command
// tree does not carry flags over between runs.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetCobraFlagState(sub)
	}
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
