// Package main is the entry point for the taskclient CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskclient/internal/backend/restapi"
	"taskclient/internal/cli"
	"taskclient/internal/commands"
	"taskclient/internal/config"
	"taskclient/internal/service"
)

func main() {
	// Cancel in-flight requests on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	factory := func(ctx context.Context, cfg *config.Config) (service.Service, error) {
		return restapi.New(cfg, cfg.Log())
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
