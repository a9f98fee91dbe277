// Package service defines the backend-agnostic interface for task operations.
package service

import "context"

// Service defines the interface for task backend operations.
// All HTTP API calls go through this interface.
// The session controller never imports the transport directly.
type Service interface {
	// Authenticate exchanges credentials for a bearer token.
	// mode selects the login or register endpoint.
	Authenticate(ctx context.Context, mode AuthMode, creds Credentials) (string, error)

	// ListTasks returns every task visible to the token holder, in server order.
	ListTasks(ctx context.Context, token string) ([]Task, error)

	// CreateTask creates a task owned by the token holder.
	CreateTask(ctx context.Context, token string, in TaskInput) (Task, error)

	// UpdateTask replaces the title and description of a task.
	UpdateTask(ctx context.Context, token string, id TaskID, in TaskInput) (Task, error)

	// ShareTask grants another user access to a task.
	ShareTask(ctx context.Context, token string, id TaskID, in ShareInput) error
}
