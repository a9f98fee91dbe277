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
	Register(&ShareCmd{})
}

// ShareCmd implements the share command.
type ShareCmd struct {
	credentialFlags
	permission string
}

// SetPermission sets the permission (for testing).
func (c *ShareCmd) SetPermission(p string) {
	c.permission = p
}

func (c *ShareCmd) Name() string      { return "share" }
func (c *ShareCmd) Aliases() []string { return nil }
func (c *ShareCmd) Synopsis() string  { return "Share a task with another user" }
func (c *ShareCmd) Usage() string {
	return "taskclient share --email <email> [--permission READ|WRITE] <task-id> <recipient-email>"
}
func (c *ShareCmd) NeedsAPI() bool { return true }

func (c *ShareCmd) RegisterFlags(fs *flag.FlagSet) {
	c.credentialFlags.register(fs)
	fs.StringVar(&c.permission, "permission", string(service.PermissionRead), "")
	fs.StringVar(&c.permission, "p", string(service.PermissionRead), "")
}

func (c *ShareCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(errOut, "error: task id required")
		return exitcode.UserError
	}
	if len(args) > 2 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[2])
		return exitcode.UserError
	}
	id := service.TaskID(strings.TrimSpace(args[0]))
	recipient := ""
	if len(args) == 2 {
		recipient = args[1]
	}

	h := newDriver(cfg, svc)
	if code := h.authenticate(ctx, service.AuthLogin, c.credentialFlags, errOut); code != exitcode.Success {
		return code
	}

	task, ok := h.ctrl.State().Find(id)
	if !ok {
		fmt.Fprintf(errOut, "error: task not found: %s\n", id)
		return exitcode.UserError
	}
	if !task.IsOwner {
		fmt.Fprintf(errOut, "error: only the owner can share task %s\n", id)
		return exitcode.UserError
	}

	h.ctrl.OpenShare(task.ID, task.Title)
	h.mem.SetValue(view.FieldShareEmail, recipient)
	if c.permission != "" {
		h.mem.SetValue(view.FieldSharePermission, strings.ToUpper(c.permission))
	}
	if code := h.finish(h.ctrl.ConfirmShare(ctx), errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, h.mem.LastAlert())
	}
	return exitcode.Success
}
