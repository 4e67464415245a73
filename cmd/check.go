package cmd

import (
	"context"
	"fmt"
	"strings"

	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/utils"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "fsck",
	Short: "Checks that the index and the repository agree",
	Long: `Compares the index with the files in the repository directory.

Orphans are files that no name points to, typically left by an interrupted
insert. Dangling names point to a file that is missing. Nothing is repaired.
Exits non-zero when the store is inconsistent.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting fsck command")

	spinner, cleanup := startSpinner(cmd.OutOrStdout(), "Checking store...")
	defer cleanup()

	result, err := workflows.Check(context.Background(), workflows.CheckOptions{Common: common()})
	if err != nil {
		return err
	}

	report := result.Report
	if report.Consistent() {
		spinner.FinalMSG = ui.Success.Sprint("✓") + fmt.Sprintf(" %d entries checked, no problems found", report.Checked)
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %d entries checked\n", ui.Warning.Sprint("⚠"), report.Checked)
	if len(report.Orphans) > 0 {
		fmt.Fprintf(&b, "%s files without a name:%s", ui.Warning.Sprint("orphans"), utils.FormatPaths(report.Orphans))
	}
	if len(report.Dangling) > 0 {
		fmt.Fprintf(&b, "%s names without a file:%s", ui.Warning.Sprint("dangling"), utils.FormatPaths(report.Dangling))
	}
	spinner.FinalMSG = b.String()

	return fmt.Errorf("%d orphans, %d dangling: %w", len(report.Orphans), len(report.Dangling), kerrors.ErrInconsistent)
}
