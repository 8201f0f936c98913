// Command capview draws train carriage occupancy diagrams.
package main

import (
	"context"
	stderrors "errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/capview/internal/cli"
	"github.com/matzehuels/capview/pkg/errors"
)

// Exit codes: 2 for bad input or config, 130 after an interrupt.
const (
	exitError       = 1
	exitUsage       = 2
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	os.Exit(exitCode(err))
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log layout, render and cache events")

	setup := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
			c.RegisterDebugHooks()
		}
		return setup(cmd, args)
	}

	if err := root.ExecuteContext(ctx); err != nil {
		if !stderrors.Is(err, context.Canceled) {
			var kv []any
			if code := errors.GetCode(err); code != "" {
				kv = append(kv, "code", code)
			}
			c.Logger.Error(errors.UserMessage(err), kv...)
			c.Logger.Debug("cause", "error", err)
		}
		return err
	}
	return nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.IsInvalid(err):
		return exitUsage
	default:
		return exitError
	}
}
