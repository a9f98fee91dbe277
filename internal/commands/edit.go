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
	Register(&EditCmd{})
}

// optionalString is a flag value that remembers whether it was set.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(v string) error {
	o.value = v
	o.set = true
	return nil
}

// EditCmd implements the edit command. Fields not given keep their current value.
type EditCmd struct {
	credentialFlags
	title       optionalString
	description optionalString
}

// SetTitle sets the new title (for testing).
func (c *EditCmd) SetTitle(t string) { c.title.Set(t) }

// SetDescription sets the new description (for testing).
func (c *EditCmd) SetDescription(d string) { c.description.Set(d) }

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task" }
func (c *EditCmd) Usage() string {
	return "taskclient edit --email <email> [--title <text>] [--description <text>] <task-id>"
}
func (c *EditCmd) NeedsAPI() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.credentialFlags.register(fs)
	fs.Var(&c.title, "title", "")
	fs.Var(&c.description, "description", "")
	fs.Var(&c.description, "d", "")
}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	id := service.TaskID(strings.TrimSpace(args[0]))

	h := newDriver(cfg, svc)
	if code := h.authenticate(ctx, service.AuthLogin, c.credentialFlags, errOut); code != exitcode.Success {
		return code
	}

	if err := h.ctrl.OpenEdit(id); err != nil {
		return h.finish(err, errOut)
	}
	if c.title.set {
		h.mem.SetValue(view.FieldTaskTitle, c.title.value)
	}
	if c.description.set {
		h.mem.SetValue(view.FieldTaskDesc, c.description.value)
	}
	if code := h.finish(h.ctrl.Save(ctx), errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
