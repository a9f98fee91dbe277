package service_test

import (
	"encoding/json"
	"errors"
	"testing"

	"taskclient/internal/service"
)

func TestTaskID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  service.TaskID
	}{
		{"number", `{"id":1}`, "1"},
		{"large number", `{"id":90071992547409}`, "90071992547409"},
		{"string", `{"id":"a1b2"}`, "a1b2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task service.Task
			if err := json.Unmarshal([]byte(tt.input), &task); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if task.ID != tt.want {
				t.Errorf("expected id %q, got %q", tt.want, task.ID)
			}
		})
	}
}

func TestTaskID_UnmarshalJSONInvalid(t *testing.T) {
	var task service.Task
	if err := json.Unmarshal([]byte(`{"id":true}`), &task); err == nil {
		t.Error("expected error for boolean id")
	}
}

func TestPermission_Valid(t *testing.T) {
	for _, p := range []service.Permission{service.PermissionRead, service.PermissionWrite} {
		if !p.Valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	for _, p := range []service.Permission{"", "read", "ADMIN"} {
		if p.Valid() {
			t.Errorf("expected %q to be invalid", p)
		}
	}
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := error(&service.NetworkError{Err: cause})

	if !errors.Is(err, cause) {
		t.Error("expected NetworkError to unwrap to its cause")
	}
	if err.Error() != "connection error: dial tcp: refused" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
