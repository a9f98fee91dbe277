package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskclient/internal/config"
	"taskclient/internal/exitcode"
	"taskclient/internal/render"
	"taskclient/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	credentialFlags
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "taskclient list --email <email>" }
func (c *ListCmd) NeedsAPI() bool    { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	c.credentialFlags.register(fs)
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	h := newDriver(cfg, svc)
	if code := h.authenticate(ctx, service.AuthLogin, c.credentialFlags, errOut); code != exitcode.Success {
		return code
	}

	tasks := h.mem.Tasks()
	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, "no tasks found")
		}
		return exitcode.Success
	}
	render.FormatTasks(out, tasks)
	return exitcode.Success
}
