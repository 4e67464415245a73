package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	kerrors "github.com/kyrias/mine/internal/errors"
	"github.com/kyrias/mine/internal/ui"
	"github.com/kyrias/mine/internal/workflows"
	"github.com/spf13/cobra"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. The returned cleanup stops it and prints
// FinalMSG to out.
//
// spinner.FinalMSG values do NOT need trailing newlines; cleanup adds one.
func startSpinner(out io.Writer, message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// FormatError turns a command error into a message for the user.
func FormatError(err error) string {
	cross := ui.Error.Sprint("✗")
	hint := ui.Info.Sprint("→")

	switch {
	case errors.Is(err, kerrors.ErrStoreNotInitialized):
		return cross + " No store found\n" +
			hint + " Run " + ui.Code.Sprint("mine init") + " first"

	case errors.Is(err, kerrors.ErrAlreadyExists):
		return cross + " A store has already been initialized\n" +
			hint + " " + err.Error()

	case errors.Is(err, kerrors.ErrAuthentication):
		return cross + " A secret failed to decrypt. It was modified, or written under a different key\n" +
			hint + " Run " + ui.Code.Sprint("mine fsck") + " to check the store"

	case errors.Is(err, kerrors.ErrInconsistent):
		return cross + " The index and the repository disagree"

	case errors.Is(err, kerrors.ErrNotFound),
		errors.Is(err, kerrors.ErrInvalidPath),
		errors.Is(err, kerrors.ErrInvalidTag),
		errors.Is(err, kerrors.ErrEmptySecret),
		errors.Is(err, kerrors.ErrInvalidPattern),
		errors.Is(err, kerrors.ErrInvalidDateFormat):
		return cross + " " + err.Error()

	default:
		return cross + " Unexpected error: " + err.Error()
	}
}

// completeNames completes entry names for the first argument.
func completeNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) != 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	result, err := workflows.Find(context.Background(), workflows.FindOptions{
		Common:  common(),
		Pattern: "**",
	})
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return result.Matches, cobra.ShellCompDirectiveNoFileComp
}
