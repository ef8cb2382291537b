package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tableflip.dev/iyilik/pkg/commands"
	"tableflip.dev/iyilik/pkg/commands/options"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx, os.Args[1:]); err != nil {
		if !options.Reported(err) {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
