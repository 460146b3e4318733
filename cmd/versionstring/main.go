package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/mhekkel/versionstring/internal/cli"
)

func main() {
	// Handle signal cancellation for the git subprocesses.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
