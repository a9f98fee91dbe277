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
	Register(&AuthCmd{mode: service.AuthLogin})
	Register(&AuthCmd{mode: service.AuthRegister})
}

// AuthCmd implements the login and register commands. The token is never
// stored: the command only reports whether the API accepted the credentials.
type AuthCmd struct {
	credentialFlags
	mode service.AuthMode
}

// NewAuthCmd creates a login or register command (for testing).
func NewAuthCmd(mode service.AuthMode) *AuthCmd {
	return &AuthCmd{mode: mode}
}

func (c *AuthCmd) Name() string      { return string(c.mode) }
func (c *AuthCmd) Aliases() []string { return nil }
func (c *AuthCmd) NeedsAPI() bool    { return true }

func (c *AuthCmd) Synopsis() string {
	if c.mode == service.AuthRegister {
		return "Create an account"
	}
	return "Check credentials"
}

func (c *AuthCmd) Usage() string {
	return fmt.Sprintf("taskclient %s --email <email> [--password <password>]", c.mode)
}

func (c *AuthCmd) RegisterFlags(fs *flag.FlagSet) {
	c.credentialFlags.register(fs)
}

func (c *AuthCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	h := newDriver(cfg, svc)
	if code := h.authenticate(ctx, c.mode, c.credentialFlags, errOut); code != exitcode.Success {
		return code
	}

	if !cfg.Quiet {
		fmt.Fprintf(out, "ok (%d tasks)\n", len(h.ctrl.State().Tasks()))
	}
	return exitcode.Success
}
