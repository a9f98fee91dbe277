package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskclient/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvTasksURL, "")

	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != config.DefaultAPIURL {
		t.Errorf("expected api url %q, got %q", config.DefaultAPIURL, cfg.APIURL)
	}
	if cfg.TasksURL != config.DefaultTasksURL {
		t.Errorf("expected tasks url %q, got %q", config.DefaultTasksURL, cfg.TasksURL)
	}
	if cfg.Timeout != config.DefaultTimeout {
		t.Errorf("expected timeout %s, got %s", config.DefaultTimeout, cfg.Timeout)
	}
}

func TestLoad_YAML(t *testing.T) {
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvTasksURL, "")

	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFile, "api_url: https://tasks.example.com/\ntasks_url: /v2/tasks\ntimeout: 5s\n")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://tasks.example.com" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.APIURL)
	}
	if cfg.TasksURL != "/v2/tasks" {
		t.Errorf("expected tasks url /v2/tasks, got %q", cfg.TasksURL)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %s", cfg.Timeout)
	}
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFile, "api_url: https://yaml.example.com\n")
	t.Setenv(config.EnvAPIURL, "https://env.example.com")
	t.Setenv(config.EnvTasksURL, "")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIURL != "https://env.example.com" {
		t.Errorf("expected env override, got %q", cfg.APIURL)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(config.EnvAPIURL, "")
	t.Setenv(config.EnvTasksURL, "")
	// godotenv only sets variables that are absent from the environment.
	os.Unsetenv(config.EnvTasksURL)
	writeFile(t, dir, config.EnvFile, config.EnvTasksURL+"=https://proxy.example.com/tasks\n")

	cfg, err := config.Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TasksURL != "https://proxy.example.com/tasks" {
		t.Errorf("expected tasks url from .env, got %q", cfg.TasksURL)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, config.ConfigFile, "api_url: [unterminated\n")

	if _, err := config.Load(dir); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestSetAPIURL_Invalid(t *testing.T) {
	cfg, _ := config.New(t.TempDir())
	for _, raw := range []string{"", "localhost:3000", "/relative"} {
		if err := cfg.SetAPIURL(raw); err == nil {
			t.Errorf("expected error for %q", raw)
		}
	}
}

func TestResolveTasksURL(t *testing.T) {
	tests := []struct {
		name     string
		api      string
		tasksURL string
		want     string
	}{
		{"default", "http://localhost:3000", "/tasks", "http://localhost:3000/tasks"},
		{"relative without slash", "http://localhost:3000", "tasks", "http://localhost:3000/tasks"},
		{"absolute", "http://localhost:3000", "http://localhost:8080/tasks", "http://localhost:8080/tasks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{APIURL: tt.api, TasksURL: tt.tasksURL}
			got, err := cfg.ResolveTasksURL()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
