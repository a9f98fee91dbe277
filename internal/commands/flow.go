package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"taskclient/internal/config"
	"taskclient/internal/exitcode"
	"taskclient/internal/service"
	"taskclient/internal/session"
	"taskclient/internal/view"
)

// credentialFlags holds the --email and --password flags shared by one-shot commands.
type credentialFlags struct {
	email    string
	password string
}

func (f *credentialFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.email, "email", "", "")
	fs.StringVar(&f.password, "password", "", "")
}

// SetCredentials sets the credentials (for testing).
func (f *credentialFlags) SetCredentials(email, password string) {
	f.email = email
	f.password = password
}

// driver pairs a session.Controller with the in-memory binding it renders
// into. One-shot commands read results from the binding directly; the ui
// command hands both to the terminal page.
type driver struct {
	ctrl *session.Controller
	mem  *view.Memory
}

func newDriver(cfg *config.Config, svc service.Service) *driver {
	mem := view.NewMemory()
	ctrl := session.New(svc, mem,
		session.WithLogger(cfg.Log()),
		session.WithAPIURL(cfg.APIURL),
	)
	return &driver{ctrl: ctrl, mem: mem}
}

// authenticate fills the auth form from flags and submits it.
// The password falls back to TASKCLIENT_PASSWORD.
func (h *driver) authenticate(ctx context.Context, mode service.AuthMode, creds credentialFlags, errOut io.Writer) int {
	password := creds.password
	if password == "" {
		password = os.Getenv(config.EnvPassword)
	}

	h.ctrl.SelectMode(mode)
	h.mem.SetValue(view.FieldEmail, creds.email)
	h.mem.SetValue(view.FieldPassword, password)

	err := h.ctrl.SubmitAuth(ctx)
	return h.finish(err, errOut)
}

// finish prints pending alerts as errors when err is non-nil and maps err to an exit code.
func (h *driver) finish(err error, errOut io.Writer) int {
	if err == nil {
		return exitcode.Success
	}
	alerts := h.mem.DrainAlerts()
	if len(alerts) == 0 {
		alerts = []string{err.Error()}
	}
	for _, a := range alerts {
		fmt.Fprintf(errOut, "error: %s\n", a)
	}
	return exitCodeFor(err)
}

// exitCodeFor maps the error taxonomy to exit codes.
func exitCodeFor(err error) int {
	var (
		validationErr *service.ValidationError
		notFoundErr   *service.NotFoundError
		authErr       *service.AuthError
	)
	switch {
	case err == nil:
		return exitcode.Success
	case errors.As(err, &validationErr), errors.As(err, &notFoundErr):
		return exitcode.UserError
	case errors.As(err, &authErr):
		return exitcode.AuthError
	default:
		return exitcode.BackendError
	}
}
