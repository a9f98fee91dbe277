// Package session implements the client-side session and task-synchronization
// flow: authentication, the task list cache, and the create, edit and share
// mutation flows, all driven through a view.Binding.
package session

import (
	"sync"

	"taskclient/internal/service"
)

// State is the session and view state owned by a Controller.
// The token and the task cache live in memory only.
type State struct {
	mu        sync.RWMutex
	mode      service.AuthMode
	token     string
	tasks     []service.Task
	editingID *service.TaskID
	sharingID *service.TaskID
}

func newState() *State {
	return &State{mode: service.AuthLogin}
}

// Mode returns the selected auth mode.
func (s *State) Mode() service.AuthMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// Token returns the bearer token, or "" when logged out.
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is held.
func (s *State) Authenticated() bool {
	return s.Token() != ""
}

// Tasks returns a copy of the cached collection.
func (s *State) Tasks() []service.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]service.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Find looks up a task in the cache.
func (s *State) Find(id service.TaskID) (service.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return service.Task{}, false
}

// EditingID returns the task being edited. ok is false in create mode or when
// the task modal is closed.
func (s *State) EditingID() (id service.TaskID, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editingID == nil {
		return "", false
	}
	return *s.editingID, true
}

// SharingID returns the task targeted by the share modal.
func (s *State) SharingID() (id service.TaskID, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.sharingID == nil {
		return "", false
	}
	return *s.sharingID, true
}

func (s *State) setMode(m service.AuthMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

func (s *State) setToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// replaceTasks swaps the whole cache; records are never patched in place.
func (s *State) replaceTasks(tasks []service.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = tasks
}

func (s *State) setEditing(id *service.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = id
}

func (s *State) setSharing(id *service.TaskID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sharingID = id
}

func (s *State) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.tasks = nil
	s.editingID = nil
	s.sharingID = nil
}
