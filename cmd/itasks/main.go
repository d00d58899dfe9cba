// Package main is the entry point for the itasks CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"itasks/internal/backend/rest"
	"itasks/internal/backend/simulated"
	"itasks/internal/cli"
	"itasks/internal/commands"
	"itasks/internal/config"
	"itasks/internal/service"
	"itasks/internal/submit"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create workflow factory
	factory := func(ctx context.Context, cfg *config.Config) (commands.Workflow, error) {
		return submit.New(submit.Options{
			Remote: func(endpoint string) (service.Service, error) {
				c, err := rest.New(endpoint, rest.Options{
					Token:   cfg.Token,
					Timeout: cfg.RequestTimeout,
				})
				if err != nil {
					return nil, err
				}
				return c, nil
			},
			Simulator: simulated.New(cfg.SimulatedDelay),
			Logger:    cfg.Logger,
		}), nil
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
