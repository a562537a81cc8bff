// Package commands implements the CLI commands for conanprep.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/conanprep/internal/app"
	"go.trai.ch/conanprep/internal/build"
	"go.trai.ch/conanprep/internal/core/domain"
	"go.trai.ch/conanprep/internal/core/ports"
)

// CLI represents the command line interface for conanprep.
type CLI struct {
	app     Application
	loader  ports.ConfigLoader
	env     domain.Environment
	workDir string
	rootCmd *cobra.Command

	configPath string
	outputDir  string
	exitCode   int
}

// Application represents the application logic interface.
type Application interface {
	PrepareDeps(ctx context.Context, opts app.PrepareOptions) (domain.ProcessOutcome, error)
}

// Option configures a CLI.
type Option func(*CLI)

// WithEnvironment sets the process environment snapshot handed to the workflow.
func WithEnvironment(env domain.Environment) Option {
	return func(c *CLI) {
		c.env = env
	}
}

// WithWorkingDir sets the project root instead of the current working directory.
func WithWorkingDir(dir string) Option {
	return func(c *CLI) {
		c.workDir = dir
	}
}

// New creates a new CLI instance with the given app and settings loader.
func New(a Application, loader ports.ConfigLoader, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "conanprep",
		Short:         "Prepare Conan dependencies for the active MSVC toolset",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		loader:  loader,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", domain.SettingsFileName,
		"Path to the settings file, relative to the project root")
	rootCmd.PersistentFlags().StringVar(&c.outputDir, "output-dir", "",
		"Output directory for profiles and generated files (default \"<project>/.out\")")

	rootCmd.AddCommand(c.newPrepareDepsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the installer's exit code from the last run, 0 if nothing ran.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) projectRoot() (string, error) {
	if c.workDir != "" {
		return c.workDir, nil
	}
	return os.Getwd()
}
