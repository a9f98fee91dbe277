package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskclient/internal/config"
	"taskclient/internal/exitcode"
	"taskclient/internal/service"
	"taskclient/internal/view"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	credentialFlags
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(d string) {
	c.description = d
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string {
	return "taskclient add --email <email> [--description <text>] <title...>"
}
func (c *AddCmd) NeedsAPI() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	c.credentialFlags.register(fs)
	fs.StringVar(&c.description, "description", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	title := strings.Join(args, " ")
	if strings.TrimSpace(title) == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	h := newDriver(cfg, svc)
	if code := h.authenticate(ctx, service.AuthLogin, c.credentialFlags, errOut); code != exitcode.Success {
		return code
	}

	h.ctrl.OpenCreate()
	h.mem.SetValue(view.FieldTaskTitle, title)
	h.mem.SetValue(view.FieldTaskDesc, c.description)
	if code := h.finish(h.ctrl.Save(ctx), errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
