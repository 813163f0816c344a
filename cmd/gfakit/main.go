package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/gfakit/internal/cli"
	gfaerrors "github.com/matzehuels/gfakit/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	return c.RootCommand().ExecuteContext(ctx)
}

// exitCode maps usage mistakes to 2 and everything else to 1.
func exitCode(err error) int {
	switch gfaerrors.GetCode(err) {
	case gfaerrors.ErrCodeArgument, gfaerrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}
