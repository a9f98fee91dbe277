// Package tui is the interactive terminal page. It renders from a view.Memory
// binding and forwards user actions to a session.Controller.
package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"taskclient/internal/render"
	"taskclient/internal/service"
	"taskclient/internal/session"
	"taskclient/internal/view"
)

// Screen is the region that currently receives input.
type Screen int

const (
	ScreenAuth Screen = iota
	ScreenTasks
	ScreenTaskModal
	ScreenShareModal
)

// actionDoneMsg reports the end of a network-bound controller action.
type actionDoneMsg struct {
	err error
}

// Model is the bubbletea model of the page.
type Model struct {
	ctx  context.Context
	ctrl *session.Controller
	mem  *view.Memory

	width  int
	height int

	screen     Screen
	focus      int
	cursor     int
	pending    bool
	status     string
	email      textinput.Model
	password   textinput.Model
	title      textinput.Model
	desc       textarea.Model
	shareEmail textinput.Model
	permission service.Permission
	spinner    spinner.Model
	styles     Styles
}

// New creates the page model. mem must be the binding ctrl drives.
func New(ctx context.Context, ctrl *session.Controller, mem *view.Memory) Model {
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 254

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	title := textinput.New()
	title.Placeholder = "Task title"
	title.CharLimit = 200

	desc := textarea.New()
	desc.Placeholder = "Description (optional)"
	desc.ShowLineNumbers = false
	desc.SetHeight(4)

	shareEmail := textinput.New()
	shareEmail.Placeholder = "recipient@example.com"
	shareEmail.CharLimit = 254

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:        ctx,
		ctrl:       ctrl,
		mem:        mem,
		email:      email,
		password:   password,
		title:      title,
		desc:       desc,
		shareEmail: shareEmail,
		permission: service.PermissionRead,
		spinner:    sp,
		styles:     DefaultStyles(),
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.desc.SetWidth(min(60, max(20, msg.Width-12)))
		return m, nil

	case actionDoneMsg:
		m.pending = false
		cmd := m.refresh()
		return m, cmd

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if m.pending {
			return m, nil
		}
		return m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Actions are ignored while a request is in flight.
		if m.pending {
			return m, nil
		}
		switch m.screen {
		case ScreenAuth:
			return m.updateAuth(msg)
		case ScreenTasks:
			return m.updateTasks(msg)
		case ScreenTaskModal:
			return m.updateTaskModal(msg)
		case ScreenShareModal:
			return m.updateShareModal(msg)
		}
	}
	return m, nil
}

func (m Model) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit
	case "tab", "down":
		m.focus = (m.focus + 1) % 2
		return m, m.applyFocus()
	case "shift+tab", "up":
		m.focus = (m.focus + 1) % 2
		return m, m.applyFocus()
	case "ctrl+r":
		mode := service.AuthRegister
		if m.ctrl.State().Mode() == service.AuthRegister {
			mode = service.AuthLogin
		}
		return m.sync(func() { m.ctrl.SelectMode(mode) })
	case "enter":
		return m.perform(m.ctrl.SubmitAuth)
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.mem.Tasks()

	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(tasks)-1 {
			m.cursor++
		}
	case "n":
		return m.sync(m.ctrl.OpenCreate)
	case "e":
		if m.cursor < len(tasks) && render.Describe(tasks[m.cursor]).ShowEdit {
			id := tasks[m.cursor].ID
			return m.sync(func() { _ = m.ctrl.OpenEdit(id) })
		}
	case "s":
		if m.cursor < len(tasks) && render.Describe(tasks[m.cursor]).ShowShare {
			task := tasks[m.cursor]
			return m.sync(func() { m.ctrl.OpenShare(task.ID, task.Title) })
		}
	case "r":
		return m.perform(m.ctrl.Load)
	case "l":
		return m.sync(m.ctrl.Logout)
	}
	return m, nil
}

func (m Model) updateTaskModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.sync(m.ctrl.CloseTask)
	case "tab", "shift+tab":
		m.focus = (m.focus + 1) % 2
		return m, m.applyFocus()
	case "ctrl+s":
		return m.perform(m.ctrl.Save)
	case "enter":
		if m.focus == 0 {
			return m.perform(m.ctrl.Save)
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.desc, cmd = m.desc.Update(msg)
	}
	return m, cmd
}

func (m Model) updateShareModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.sync(m.ctrl.CloseShare)
	case "tab", "shift+tab":
		m.focus = (m.focus + 1) % 2
		return m, m.applyFocus()
	case "enter":
		return m.perform(m.ctrl.ConfirmShare)
	}

	if m.focus == 1 {
		switch msg.String() {
		case "left", "right", " ", "h", "l":
			if m.permission == service.PermissionRead {
				m.permission = service.PermissionWrite
			} else {
				m.permission = service.PermissionRead
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.shareEmail, cmd = m.shareEmail.Update(msg)
	return m, cmd
}

// handleMouse routes left clicks on an open modal's overlay to the controller.
// A click on the box is a click on the modal's content, not its backdrop.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	var modal view.Element
	switch m.screen {
	case ScreenTaskModal:
		modal = view.TaskModal
	case ScreenShareModal:
		modal = view.ShareModal
	default:
		return m, nil
	}

	target := modal
	if x, y, w, h, ok := m.modalRect(); !ok || (msg.X >= x && msg.X < x+w && msg.Y >= y && msg.Y < y+h) {
		target = view.Element(string(modal) + "-content")
	}
	return m.sync(func() { m.ctrl.Backdrop(modal, target) })
}

// sync runs a controller action that makes no request. The previous alert
// is dropped so it does not carry over into a newly opened form.
func (m Model) sync(action func()) (tea.Model, tea.Cmd) {
	m.push()
	m.status = ""
	action()
	cmd := m.refresh()
	return m, cmd
}

// perform runs a network-bound controller action off the update goroutine.
func (m Model) perform(action func(context.Context) error) (tea.Model, tea.Cmd) {
	m.push()
	m.pending = true
	m.status = ""
	ctx := m.ctx
	run := func() tea.Msg {
		return actionDoneMsg{err: action(ctx)}
	}
	return m, tea.Batch(m.spinner.Tick, run)
}

// push copies widget values into the binding.
func (m *Model) push() {
	m.mem.SetValue(view.FieldEmail, m.email.Value())
	m.mem.SetValue(view.FieldPassword, m.password.Value())
	m.mem.SetValue(view.FieldTaskTitle, m.title.Value())
	m.mem.SetValue(view.FieldTaskDesc, m.desc.Value())
	m.mem.SetValue(view.FieldShareEmail, m.shareEmail.Value())
	m.mem.SetValue(view.FieldSharePermission, string(m.permission))
}

// refresh pulls binding state back into the widgets, picks up alerts, and
// recomputes the active screen.
func (m *Model) refresh() tea.Cmd {
	m.email.SetValue(m.mem.Value(view.FieldEmail))
	m.password.SetValue(m.mem.Value(view.FieldPassword))
	m.title.SetValue(m.mem.Value(view.FieldTaskTitle))
	m.desc.SetValue(m.mem.Value(view.FieldTaskDesc))
	m.shareEmail.SetValue(m.mem.Value(view.FieldShareEmail))
	m.permission = service.Permission(m.mem.Value(view.FieldSharePermission))
	if !m.permission.Valid() {
		m.permission = service.PermissionRead
	}

	if alerts := m.mem.DrainAlerts(); len(alerts) > 0 {
		m.status = strings.Join(alerts, " · ")
	}

	if n := len(m.mem.Tasks()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}

	screen := m.currentScreen()
	if screen != m.screen {
		m.screen = screen
		m.focus = 0
	}
	return m.applyFocus()
}

func (m Model) currentScreen() Screen {
	switch {
	case m.mem.Visible(view.ShareModal):
		return ScreenShareModal
	case m.mem.Visible(view.TaskModal):
		return ScreenTaskModal
	case m.mem.Visible(view.App):
		return ScreenTasks
	default:
		return ScreenAuth
	}
}

// applyFocus focuses exactly the input selected by screen and focus index.
func (m *Model) applyFocus() tea.Cmd {
	m.email.Blur()
	m.password.Blur()
	m.title.Blur()
	m.desc.Blur()
	m.shareEmail.Blur()

	switch m.screen {
	case ScreenAuth:
		if m.focus == 0 {
			return m.email.Focus()
		}
		return m.password.Focus()
	case ScreenTaskModal:
		if m.focus == 0 {
			return m.title.Focus()
		}
		return m.desc.Focus()
	case ScreenShareModal:
		if m.focus == 0 {
			return m.shareEmail.Focus()
		}
	}
	return nil
}

// Screen returns the active screen.
func (m Model) Screen() Screen {
	return m.screen
}

// Status returns the alert line.
func (m Model) Status() string {
	return m.status
}

// Pending reports whether a request is in flight.
func (m Model) Pending() bool {
	return m.pending
}

// Run starts the interactive page and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *session.Controller, mem *view.Memory, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	}, opts...)

	p := tea.NewProgram(New(ctx, ctrl, mem), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
