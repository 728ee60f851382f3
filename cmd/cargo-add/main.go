package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/cargoadd/internal/cli"
	"github.com/matzehuels/cargoadd/pkg/errors"
)

// exitCode maps an error to the process exit status: 2 for invalid
// command-line input, 3 when the manifest is missing or malformed, and
// 1 for everything else.
func exitCode(err error) int {
	switch {
	case errors.Is(err, errors.ErrCodeInvalidInput):
		return 2
	case errors.IsStructural(err):
		return 3
	}
	return 1
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if stderrors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintf(os.Stderr, "error: %s\n", errors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}
