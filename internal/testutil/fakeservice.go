// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strconv"
	"sync"

	"taskclient/internal/service"
)

// FakeToken is the token FakeService issues for every successful auth.
const FakeToken = "fake-token"

// Call records one invocation of a FakeService method.
type Call struct {
	Method string
	Token  string
	Mode   service.AuthMode
	ID     service.TaskID
	Creds  service.Credentials
	Task   service.TaskInput
	Share  service.ShareInput
}

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.RWMutex
	tasks  []service.Task
	shares map[service.TaskID][]service.ShareInput
	nextID int
	calls  []Call

	// Error injection for testing
	AuthenticateErr error
	ListTasksErr    error
	CreateTaskErr   error
	UpdateTaskErr   error
	ShareTaskErr    error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{
		shares: make(map[service.TaskID][]service.ShareInput),
		nextID: 1,
	}
}

// AddTask seeds a task into the fake backend.
func (f *FakeService) AddTask(task service.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, task)
	if n, err := strconv.Atoi(string(task.ID)); err == nil && n >= f.nextID {
		f.nextID = n + 1
	}
}

// Calls returns every recorded call in order.
func (f *FakeService) Calls() []Call {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallCount returns how many times method was invoked.
func (f *FakeService) CallCount(method string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Shares returns the grants recorded for a task.
func (f *FakeService) Shares(id service.TaskID) []service.ShareInput {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]service.ShareInput(nil), f.shares[id]...)
}

func (f *FakeService) record(c Call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

// Authenticate implements service.Service.
func (f *FakeService) Authenticate(ctx context.Context, mode service.AuthMode, creds service.Credentials) (string, error) {
	f.record(Call{Method: "Authenticate", Mode: mode, Creds: creds})
	if f.AuthenticateErr != nil {
		return "", f.AuthenticateErr
	}
	return FakeToken, nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context, token string) ([]service.Task, error) {
	f.record(Call{Method: "ListTasks", Token: token})
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]service.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, token string, in service.TaskInput) (service.Task, error) {
	f.record(Call{Method: "CreateTask", Token: token, Task: in})
	if f.CreateTaskErr != nil {
		return service.Task{}, f.CreateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	task := service.Task{
		ID:          service.TaskID(strconv.Itoa(f.nextID)),
		Title:       in.Title,
		Description: in.Description,
		IsOwner:     true,
		Permission:  service.PermissionWrite,
	}
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements service.Service.
func (f *FakeService) UpdateTask(ctx context.Context, token string, id service.TaskID, in service.TaskInput) (service.Task, error) {
	f.record(Call{Method: "UpdateTask", Token: token, ID: id, Task: in})
	if f.UpdateTaskErr != nil {
		return service.Task{}, f.UpdateTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks[i].Title = in.Title
			f.tasks[i].Description = in.Description
			return f.tasks[i], nil
		}
	}
	return service.Task{}, &service.APIError{Status: 404, Message: "Task not found"}
}

// ShareTask implements service.Service.
func (f *FakeService) ShareTask(ctx context.Context, token string, id service.TaskID, in service.ShareInput) error {
	f.record(Call{Method: "ShareTask", Token: token, ID: id, Share: in})
	if f.ShareTaskErr != nil {
		return f.ShareTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, t := range f.tasks {
		if t.ID == id {
			f.shares[id] = append(f.shares[id], in)
			return nil
		}
	}
	return &service.APIError{Status: 404, Message: "Task not found"}
}
