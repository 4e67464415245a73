package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/utils"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

var insertCmd = &cobra.Command{
	Use:   "insert NAME [SECRET]",
	Short: "Stores a secret under a name",
	Long: `Stores a secret as the password of a new entry.

The secret is taken from the second argument, from piped stdin, or from a
hidden prompt, in that order. An existing entry under NAME is replaced.

Examples:
  mine insert work/email             # Prompt for the secret
  pwgen 32 1 | mine insert db/root   # Read the secret from stdin`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeNames,
	RunE:              runInsert,
}

func runInsert(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting insert command")

	secret, err := readSecret(cmd, args)
	if err != nil {
		return err
	}

	result, err := workflows.Insert(context.Background(), workflows.InsertOptions{
		Common: common(),
		Name:   args[0],
		Secret: secret,
	})
	if err != nil {
		return err
	}

	verb := "Stored"
	if result.Replaced {
		verb = "Replaced"
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Success.Sprint("✓")+" "+verb+" "+ui.Highlight.Sprint(args[0]))
	return nil
}

// readSecret takes the secret from args, piped input, or a prompt.
func readSecret(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 2 {
		Logger.Warnf("Secrets passed as arguments may be kept in shell history")
		return []byte(args[1]), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !utils.IsPiped(f) {
		return utils.ReadPassphrase(fmt.Sprintf("Secret for %s: ", args[0]))
	}

	Logger.Debugf("Reading secret from stdin")
	return utils.ReadSecret(in)
}
