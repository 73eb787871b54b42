package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"notary-profile/internal/cli"
)

// server is the preview server on its own; it is equivalent to
// `notary-profile serve` and reads the same environment.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := cli.NewRootCmd()
	args := []string{"serve"}
	if p := os.Getenv("CONFIG_FILE"); p != "" {
		args = append(args, "--config", p)
	}
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		log.Printf("server failed: %v", err)
		cancel()
		os.Exit(1)
	}
}
