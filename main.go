package main

import (
	"fmt"
	"os"

	"github.com/kyrias/mine/cmd"
)

func main() {
	if err := cmd.MineCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, cmd.FormatError(err))
		os.Exit(1)
	}
}
