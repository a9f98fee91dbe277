package service

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// TaskID identifies a task. The backend emits numeric ids; strings are accepted too.
type TaskID string

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (id *TaskID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = TaskID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid task id: %s", data)
	}
	*id = TaskID(n.String())
	return nil
}

// Permission is the access level granted to a non-owner.
type Permission string

const (
	PermissionRead  Permission = "READ"
	PermissionWrite Permission = "WRITE"
)

// Valid reports whether p is READ or WRITE.
func (p Permission) Valid() bool {
	return p == PermissionRead || p == PermissionWrite
}

// Task represents a single task as seen by the current user.
type Task struct {
	ID          TaskID     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	IsOwner     bool       `json:"isOwner"`
	Permission  Permission `json:"permission"`
}

// AuthMode selects the authentication endpoint.
type AuthMode string

const (
	AuthLogin    AuthMode = "login"
	AuthRegister AuthMode = "register"
)

// Credentials is the body of login and register requests.
type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TaskInput is the body of create and update requests.
type TaskInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// ShareInput is the body of share requests.
type ShareInput struct {
	Email      string     `json:"email" validate:"required"`
	Permission Permission `json:"permission" validate:"required,oneof=READ WRITE"`
}
