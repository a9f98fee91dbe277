package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskclient/internal/config"
	"taskclient/internal/exitcode"
	"taskclient/internal/service"
)

func init() {
	Register(&ConfigCmd{})
}

// ConfigCmd prints the effective configuration.
type ConfigCmd struct{}

func (c *ConfigCmd) Name() string      { return "config" }
func (c *ConfigCmd) Aliases() []string { return nil }
func (c *ConfigCmd) Synopsis() string  { return "Print effective configuration" }
func (c *ConfigCmd) Usage() string     { return "taskclient config" }
func (c *ConfigCmd) NeedsAPI() bool    { return false }

func (c *ConfigCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ConfigCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	tasksURL, err := cfg.ResolveTasksURL()
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	fmt.Fprintf(out, "api_url:   %s\n", cfg.APIURL)
	fmt.Fprintf(out, "tasks_url: %s\n", tasksURL)
	fmt.Fprintf(out, "timeout:   %s\n", cfg.Timeout)
	fmt.Fprintf(out, "dir:       %s\n", cfg.Dir)
	return exitcode.Success
}
