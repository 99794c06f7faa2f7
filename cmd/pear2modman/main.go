package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/arthur-debert/pear2modman/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Failures are already reported by the command itself
	if err := cli.NewRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
