// Command redisctl is a small operator tool built on rediskit. It talks to
// standalone, cluster and sentinel deployments through either driver.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gs := newGlobalState(ctx, os.Stdout, os.Stderr)
	if err := newRootCommand(gs).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
