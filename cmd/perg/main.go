package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dl/perg/internal/cli"
)

func main() {
	os.Exit(execute(os.Args[1:], cli.Run))
}

// execute runs the root command with config-file args prepended to args.
func execute(args []string, run runFunc) int {
	return executeTo(os.Stderr, args, run)
}

func executeTo(stderr io.Writer, args []string, run runFunc) int {
	fileArgs, err := cli.LoadConfigArgs()
	if err != nil {
		fmt.Fprintf(stderr, "perg: %v\n", err)
		return cli.ExitUsage
	}

	code := cli.ExitOK
	cmd := newRootCmd(run, &code)
	cmd.SetErr(stderr)
	// A nil slice would make cobra fall back to os.Args.
	cmdArgs := append([]string{}, fileArgs...)
	cmd.SetArgs(append(cmdArgs, args...))
	if err := cmd.Execute(); err != nil {
		return cli.ExitUsage
	}
	return code
}
