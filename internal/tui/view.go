package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskclient/internal/render"
	"taskclient/internal/service"
	"taskclient/internal/view"
)

const appTitle = "Task Manager"

// View renders the page.
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenAuth:
		body = m.authView()
	case ScreenTasks:
		body = m.tasksView()
	case ScreenTaskModal, ScreenShareModal:
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.modalBox())
		}
		return m.modalBox()
	}
	return body + "\n" + m.statusLine()
}

func (m Model) authView() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Header.Render(appTitle))
	b.WriteString("\n")

	login, register := s.Tab, s.Tab
	if m.mem.Visible(view.LoginTab) {
		login = s.ActiveTab
	}
	if m.mem.Visible(view.RegisterTab) {
		register = s.ActiveTab
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, login.Render("Login"), register.Render("Register")))
	b.WriteString("\n\n")

	b.WriteString(s.Label.Render("Email") + "\n")
	b.WriteString(m.email.View() + "\n\n")
	b.WriteString(s.Label.Render("Password") + "\n")
	b.WriteString(m.password.View() + "\n\n")
	b.WriteString(s.Button.Render(m.mem.Text(view.LabelAuthButton)))
	b.WriteString("\n")
	b.WriteString(s.Help.Render("tab: next field • ctrl+r: login/register • enter: submit • esc: quit"))
	return b.String()
}

func (m Model) tasksView() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Header.Render(appTitle))
	b.WriteString("\n")

	tasks := m.mem.Tasks()
	if len(tasks) == 0 {
		b.WriteString(s.Desc.Render("No tasks yet. Press n to create one."))
		b.WriteString("\n")
	}
	for i, task := range tasks {
		b.WriteString(m.cardView(task, i == m.cursor))
		b.WriteString("\n")
	}

	b.WriteString(s.Help.Render("↑/↓: move • n: new • e: edit • s: share • r: reload • l: logout • q: quit"))
	return b.String()
}

func (m Model) cardView(task service.Task, selected bool) string {
	s := m.styles
	card := render.Describe(task)

	badge := s.Owner.Render(card.Badge)
	if card.IsShared {
		badge = s.Shared.Render(card.Badge)
	}

	line := s.Title.Render(card.Title) + "  " + badge
	for _, a := range card.Actions() {
		line += "  " + s.Action.Render("["+a+"]")
	}
	if card.Description != "" {
		line += "\n" + s.Desc.Render(card.Description)
	}

	if selected {
		return s.Selected.Render(line)
	}
	return s.Card.Render(line)
}

// modalBox renders the open modal without its surrounding overlay.
func (m Model) modalBox() string {
	s := m.styles
	var b strings.Builder

	switch m.screen {
	case ScreenTaskModal:
		b.WriteString(s.ModalTitle.Render(m.mem.Text(view.LabelTaskModalTitle)))
		b.WriteString("\n")
		b.WriteString(s.Label.Render("Title") + "\n")
		b.WriteString(m.title.View() + "\n\n")
		b.WriteString(s.Label.Render("Description") + "\n")
		b.WriteString(m.desc.View() + "\n")
		b.WriteString(m.modalStatus())
		b.WriteString(s.Help.Render("tab: next field • ctrl+s: save • esc: cancel"))
	case ScreenShareModal:
		b.WriteString(s.ModalTitle.Render("Share: " + render.Sanitize(m.mem.Text(view.LabelShareTaskTitle))))
		b.WriteString("\n")
		b.WriteString(s.Label.Render("Email") + "\n")
		b.WriteString(m.shareEmail.View() + "\n\n")
		b.WriteString(s.Label.Render("Permission") + "\n")
		b.WriteString(m.permissionView() + "\n")
		b.WriteString(m.modalStatus())
		b.WriteString(s.Help.Render("tab: next field • ←/→: permission • enter: share • esc: cancel"))
	}
	return s.Modal.Render(b.String())
}

func (m Model) permissionView() string {
	s := m.styles
	read, write := s.Tab, s.Tab
	if m.permission == service.PermissionWrite {
		write = s.ActiveTab
	} else {
		read = s.ActiveTab
	}
	prefix := "  "
	if m.focus == 1 {
		prefix = "> "
	}
	return prefix + lipgloss.JoinHorizontal(lipgloss.Top,
		read.Render(string(service.PermissionRead)),
		write.Render(string(service.PermissionWrite)))
}

// modalStatus is the status line drawn inside an open modal, so validation
// and request errors stay visible while the form remains open.
func (m Model) modalStatus() string {
	if line := m.statusLine(); line != "" {
		return line + "\n"
	}
	return ""
}

func (m Model) statusLine() string {
	if m.pending {
		return m.spinner.View() + " working…"
	}
	if m.status == "" {
		return ""
	}
	return m.styles.Status.Render(render.Sanitize(m.status))
}

// modalRect returns the screen cell bounds of the open modal's box as placed
// by View. ok is false when no modal is open or the window size is unknown.
func (m Model) modalRect() (x, y, w, h int, ok bool) {
	if m.width <= 0 || m.height <= 0 {
		return 0, 0, 0, 0, false
	}
	if m.screen != ScreenTaskModal && m.screen != ScreenShareModal {
		return 0, 0, 0, 0, false
	}
	box := m.modalBox()
	w, h = lipgloss.Width(box), lipgloss.Height(box)
	x = max(0, (m.width-w)/2)
	y = max(0, (m.height-h)/2)
	return x, y, w, h, true
}
