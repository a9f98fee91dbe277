package service

import "fmt"

// ValidationError reports an empty or malformed form field.
// It is raised locally and never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// AuthError is a non-2xx response from an auth endpoint.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("authentication failed (status %d)", e.Status)
	}
	return e.Message
}

// APIError is a non-2xx response from a task endpoint.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed (status %d)", e.Status)
	}
	return e.Message
}

// NetworkError wraps a transport failure: the request never produced a response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "connection error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned when a task id is absent from the local cache.
type NotFoundError struct {
	ID TaskID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.ID)
}
