package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/combikit/internal/cli"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	root := cli.New(os.Stderr, cli.LogInfo).RootCommand()
	root.SilenceErrors = true
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "Error:", cerrors.UserMessage(err))
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps err to 130 for interrupts, 2 for bad input and 1 otherwise.
func exitCode(err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return 130
	case cerrors.GetCode(err).IsClientError():
		return 2
	}
	return 1
}
