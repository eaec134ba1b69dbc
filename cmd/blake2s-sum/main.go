// Command blake2s-sum computes and checks BLAKE2s checksums.
package main

import (
	"fmt"
	"os"

	"github.com/hupe1980/blake2s/internal/cli"
	apperrors "github.com/hupe1980/blake2s/internal/errors"
)

func main() {
	cmd := cli.NewRootCommand(os.Stdout, os.Stderr, os.Stdin)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "blake2s-sum:", err)
		os.Exit(apperrors.ExitCode(err))
	}
}
