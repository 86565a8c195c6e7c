package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api"
)

var envPath string = "."

func main() {
	server, err := api.NewServerFromConfig(envPath)
	if err != nil {
		panic(fmt.Sprintf("Could not start server: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := server.Start(ctx)
	if err := server.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "server stopped: %v\n", runErr)
		os.Exit(1)
	}
}
