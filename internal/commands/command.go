// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"taskclient/internal/config"
	"taskclient/internal/service"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAPI returns true if the command talks to the task API.
	// Commands like help, version and config return false.
	NeedsAPI() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg carries the validated API URL, the tasks URL, the timeout and the logger
	// built by the dispatcher; use cfg.Log() rather than creating one.
	// svc is the API client, or nil if NeedsAPI() returns false.
	// args holds positional arguments after flag parsing.
	// Returns the process exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}
