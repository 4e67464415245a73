package cmd

import (
	"context"

	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Creates a new secret store",
	Long: `Generates a secret key and lays out an empty store in the data directory.

Fails if a secret key already exists, so an existing store is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting init command")

	spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Initializing store...")
	defer cleanup()

	result, err := workflows.Init(context.Background(), workflows.InitOptions{Common: common()})
	if err != nil {
		return err
	}

	spinner.FinalMSG = ui.Success.Sprint("✓") + " Store initialized at " + ui.Path.Sprint(result.DataDir) + "\n" +
		ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("mine insert NAME") + " to add your first secret"
	return nil
}
