package session

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"taskclient/internal/service"
	"taskclient/internal/view"
)

// Alert texts shown on the binding.
const (
	MsgMissingCredentials = "Please enter both email and password"
	MsgAuthFailed         = "Authentication failed"
	MsgMissingTitle       = "Please enter a task title"
	MsgSaveFailed         = "Failed to save task"
	MsgMissingShareEmail  = "Please enter an email address"
	MsgInvalidPermission  = "Please choose READ or WRITE permission"
	MsgShareFailed        = "Failed to share task"
	MsgLoadFailed         = "Failed to load tasks"
	MsgTaskNotFound       = "Task not found"
	MsgConnectionError    = "connection error"
)

// Modal titles.
const (
	TitleCreateTask = "Create New Task"
	TitleEditTask   = "Edit Task"
)

// Controller owns the session state and drives a view.Binding in response to
// user actions. Every action is synchronous; the caller decides whether to run
// it on a separate goroutine.
type Controller struct {
	svc      service.Service
	view     view.Binding
	state    *State
	apiURL   string
	log      *zap.Logger
	validate *validator.Validate
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithAPIURL sets the origin named in connection-error alerts.
func WithAPIURL(u string) Option {
	return func(c *Controller) {
		c.apiURL = u
	}
}

// New creates a Controller in the logged-out, login-mode state.
func New(svc service.Service, v view.Binding, opts ...Option) *Controller {
	c := &Controller{
		svc:      svc,
		view:     v,
		state:    newState(),
		log:      zap.NewNop(),
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("session")
	return c
}

// State exposes read access to the session state.
func (c *Controller) State() *State {
	return c.state
}

// SelectMode switches between the login and register tabs. Selecting one tab
// deselects the other and relabels the submit action.
func (c *Controller) SelectMode(mode service.AuthMode) {
	c.state.setMode(mode)
	if mode == service.AuthRegister {
		c.view.Show(view.RegisterTab)
		c.view.Hide(view.LoginTab)
		c.view.SetText(view.LabelAuthButton, "Register")
		return
	}
	c.view.Show(view.LoginTab)
	c.view.Hide(view.RegisterTab)
	c.view.SetText(view.LabelAuthButton, "Login")
}

// SubmitAuth authenticates with the email and password fields. On success the
// app view replaces the auth card and the task list is loaded once.
func (c *Controller) SubmitAuth(ctx context.Context) error {
	creds := service.Credentials{
		Email:    strings.TrimSpace(c.view.Value(view.FieldEmail)),
		Password: c.view.Value(view.FieldPassword),
	}
	if err := c.validate.Struct(creds); err != nil {
		return c.invalid(err, MsgMissingCredentials)
	}

	mode := c.state.Mode()
	token, err := c.svc.Authenticate(ctx, mode, creds)
	if err != nil {
		c.log.Debug("auth failed", zap.String("mode", string(mode)), zap.Error(err))
		var authErr *service.AuthError
		var netErr *service.NetworkError
		switch {
		case errors.As(err, &authErr):
			c.view.Alert(orDefault(authErr.Message, MsgAuthFailed))
		case errors.As(err, &netErr):
			c.view.Alert(c.connectionMessage())
		default:
			c.view.Alert(MsgAuthFailed)
		}
		return err
	}

	c.state.setToken(token)
	c.log.Debug("authenticated", zap.String("mode", string(mode)))
	c.view.Hide(view.AuthCard)
	c.view.Show(view.App)
	return c.Load(ctx)
}

// Logout drops the token and the cache and returns to the auth card.
func (c *Controller) Logout() {
	c.state.reset()
	c.view.Hide(view.TaskModal)
	c.view.Hide(view.ShareModal)
	c.view.Hide(view.App)
	c.view.Show(view.AuthCard)
	c.view.SetValue(view.FieldEmail, "")
	c.view.SetValue(view.FieldPassword, "")
	c.view.RenderTasks(nil)
	c.log.Debug("logged out")
}

// Load fetches the task collection, replaces the cache, and re-renders the
// whole list. On failure the cache is left as it was.
func (c *Controller) Load(ctx context.Context) error {
	tasks, err := c.svc.ListTasks(ctx, c.state.Token())
	if err != nil {
		c.log.Debug("load failed", zap.Error(err))
		c.view.Alert(failure(MsgLoadFailed, err))
		return err
	}
	c.state.replaceTasks(tasks)
	c.view.RenderTasks(tasks)
	c.log.Debug("tasks loaded", zap.Int("count", len(tasks)))
	return nil
}

// OpenCreate opens the task modal in create mode with empty fields.
func (c *Controller) OpenCreate() {
	c.CloseShare()
	c.state.setEditing(nil)
	c.view.SetText(view.LabelTaskModalTitle, TitleCreateTask)
	c.view.SetValue(view.FieldTaskTitle, "")
	c.view.SetValue(view.FieldTaskDesc, "")
	c.view.Show(view.TaskModal)
}

// OpenEdit opens the task modal in edit mode, filled from the cached record.
// No request is made. An id absent from the cache alerts and changes nothing.
func (c *Controller) OpenEdit(id service.TaskID) error {
	task, ok := c.state.Find(id)
	if !ok {
		c.view.Alert(MsgTaskNotFound)
		return &service.NotFoundError{ID: id}
	}

	c.CloseShare()
	c.state.setEditing(&id)
	c.view.SetText(view.LabelTaskModalTitle, TitleEditTask)
	c.view.SetValue(view.FieldTaskTitle, task.Title)
	c.view.SetValue(view.FieldTaskDesc, task.Description)
	c.view.Show(view.TaskModal)
	c.log.Debug("edit opened", zap.String("task_id", string(id)))
	return nil
}

// Save submits the task modal: PUT in edit mode, POST in create mode. On
// success the modal closes and the list reloads; on failure it stays open.
func (c *Controller) Save(ctx context.Context) error {
	in := service.TaskInput{
		Title:       strings.TrimSpace(c.view.Value(view.FieldTaskTitle)),
		Description: strings.TrimSpace(c.view.Value(view.FieldTaskDesc)),
	}
	if err := c.validate.Struct(in); err != nil {
		return c.invalid(err, MsgMissingTitle)
	}

	token := c.state.Token()
	var err error
	if id, editing := c.state.EditingID(); editing {
		c.log.Debug("updating task", zap.String("task_id", string(id)))
		_, err = c.svc.UpdateTask(ctx, token, id, in)
	} else {
		c.log.Debug("creating task")
		_, err = c.svc.CreateTask(ctx, token, in)
	}
	if err != nil {
		c.view.Alert(failure(MsgSaveFailed, err))
		return err
	}

	c.CloseTask()
	return c.Load(ctx)
}

// CloseTask clears the task form and edit state and hides the modal.
func (c *Controller) CloseTask() {
	c.view.Hide(view.TaskModal)
	c.view.SetValue(view.FieldTaskTitle, "")
	c.view.SetValue(view.FieldTaskDesc, "")
	c.state.setEditing(nil)
}

// OpenShare targets the share modal at a task and resets the form.
func (c *Controller) OpenShare(id service.TaskID, title string) {
	c.CloseTask()
	c.state.setSharing(&id)
	c.view.SetText(view.LabelShareTaskTitle, title)
	c.view.SetValue(view.FieldShareEmail, "")
	c.view.SetValue(view.FieldSharePermission, string(service.PermissionRead))
	c.view.Show(view.ShareModal)
	c.log.Debug("share opened", zap.String("task_id", string(id)))
}

// ConfirmShare submits the share modal. On success the modal closes, a
// confirmation naming the recipient is shown, and the list reloads.
func (c *Controller) ConfirmShare(ctx context.Context) error {
	in := service.ShareInput{
		Email:      strings.TrimSpace(c.view.Value(view.FieldShareEmail)),
		Permission: service.Permission(c.view.Value(view.FieldSharePermission)),
	}
	if in.Email == "" {
		return c.invalid(&service.ValidationError{Field: "Email"}, MsgMissingShareEmail)
	}
	if err := c.validate.Struct(in); err != nil {
		return c.invalid(err, MsgInvalidPermission)
	}

	id, ok := c.state.SharingID()
	if !ok {
		c.view.Alert(MsgTaskNotFound)
		return &service.NotFoundError{}
	}

	c.log.Debug("sharing task", zap.String("task_id", string(id)), zap.String("permission", string(in.Permission)))
	if err := c.svc.ShareTask(ctx, c.state.Token(), id, in); err != nil {
		c.view.Alert(failure(MsgShareFailed, err))
		return err
	}

	c.CloseShare()
	c.view.Alert("✓ Task shared successfully with " + in.Email + "!")
	return c.Load(ctx)
}

// CloseShare clears the share state and email field and hides the modal.
func (c *Controller) CloseShare() {
	c.view.Hide(view.ShareModal)
	c.view.SetValue(view.FieldShareEmail, "")
	c.state.setSharing(nil)
}

// Backdrop handles a click on a modal overlay. The modal closes only when the
// click target is the overlay element itself, not one of its descendants.
func (c *Controller) Backdrop(modal, target view.Element) {
	if modal != target {
		return
	}
	switch modal {
	case view.TaskModal:
		c.CloseTask()
	case view.ShareModal:
		c.CloseShare()
	}
}

// invalid alerts msg and returns a ValidationError naming the first failing field.
func (c *Controller) invalid(err error, msg string) error {
	c.view.Alert(msg)
	field := ""
	var verrs validator.ValidationErrors
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verrs) && len(verrs) > 0:
		field = verrs[0].Field()
	case errors.As(err, &verr):
		field = verr.Field
	}
	return &service.ValidationError{Field: field, Message: msg}
}

func (c *Controller) connectionMessage() string {
	if c.apiURL == "" {
		return "Connection error. Make sure the backend is running"
	}
	return "Connection error. Make sure backend is running on " + c.apiURL
}

// failure formats "<prefix>: <reason>" for a failed task request.
func failure(prefix string, err error) string {
	var apiErr *service.APIError
	var netErr *service.NetworkError
	switch {
	case errors.As(err, &apiErr):
		return prefix + ": " + orDefault(apiErr.Message, prefix)
	case errors.As(err, &netErr):
		return prefix + ": " + MsgConnectionError
	default:
		return prefix + ": " + err.Error()
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
