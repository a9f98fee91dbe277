package view

import (
	"sync"

	"taskclient/internal/service"
)

// Memory is a thread-safe in-memory Binding. The TUI renders from it and the
// one-shot commands and tests inspect it.
type Memory struct {
	mu      sync.RWMutex
	values  map[Field]string
	labels  map[Label]string
	visible map[Element]bool
	alerts  []string
	tasks   []service.Task
	renders int
}

// NewMemory returns a binding in the page's initial state: the auth card and
// login tab visible, everything else hidden.
func NewMemory() *Memory {
	return &Memory{
		values: make(map[Field]string),
		labels: map[Label]string{LabelAuthButton: "Login"},
		visible: map[Element]bool{
			AuthCard: true,
			LoginTab: true,
		},
	}
}

// Value implements Binding.
func (m *Memory) Value(f Field) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.values[f]
}

// SetValue implements Binding.
func (m *Memory) SetValue(f Field, v string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[f] = v
}

// SetText implements Binding.
func (m *Memory) SetText(l Label, v string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[l] = v
}

// Text returns the current text of a label.
func (m *Memory) Text(l Label) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.labels[l]
}

// Show implements Binding.
func (m *Memory) Show(e Element) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[e] = true
}

// Hide implements Binding.
func (m *Memory) Hide(e Element) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.visible[e] = false
}

// Visible reports whether an element is shown.
func (m *Memory) Visible(e Element) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.visible[e]
}

// Alert implements Binding.
func (m *Memory) Alert(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.alerts = append(m.alerts, msg)
}

// Alerts returns every alert raised so far.
func (m *Memory) Alerts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, len(m.alerts))
	copy(out, m.alerts)
	return out
}

// LastAlert returns the most recent alert, or "".
func (m *Memory) LastAlert() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.alerts) == 0 {
		return ""
	}
	return m.alerts[len(m.alerts)-1]
}

// DrainAlerts returns and clears pending alerts.
func (m *Memory) DrainAlerts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.alerts
	m.alerts = nil
	return out
}

// RenderTasks implements Binding. The list is replaced, never merged.
func (m *Memory) RenderTasks(tasks []service.Task) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = make([]service.Task, len(tasks))
	copy(m.tasks, tasks)
	m.renders++
}

// Tasks returns the most recently rendered list.
func (m *Memory) Tasks() []service.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]service.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Renders returns how many times the list has been rendered.
func (m *Memory) Renders() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.renders
}
