package main

import (
	"fmt"
	"os"

	"github.com/sealedenv/sealed/cmd"
	serrors "github.com/sealedenv/sealed/internal/errors"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(serrors.ExitCode(err))
	}
}
