// Package main is the entry point for conanprep.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/conanprep/cmd/conanprep/commands"
	"go.trai.ch/conanprep/internal/app"
	"go.trai.ch/conanprep/internal/core/domain"
	_ "go.trai.ch/conanprep/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(
		context.Background(),
		os.Args[1:],
		domain.EnvironmentFrom(os.LookupEnv),
		os.Stderr,
		func(ctx context.Context) (*app.Components, error) {
			c, _, err := graft.ExecuteFor[*app.Components](ctx)
			return c, err
		},
	))
}

func run(
	ctx context.Context,
	args []string,
	env domain.Environment,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...commands.Option,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	// 2. Interface - CLI
	opts = append([]commands.Option{commands.WithEnvironment(env)}, opts...)
	cli := commands.New(components.App, components.ConfigLoader, opts...)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return cli.ExitCode()
}
