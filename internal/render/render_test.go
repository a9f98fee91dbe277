package render_test

import (
	"bytes"
	"testing"

	"taskclient/internal/render"
	"taskclient/internal/service"
	"taskclient/internal/testutil"
)

func TestDescribe_Actions(t *testing.T) {
	tests := []struct {
		name       string
		task       service.Task
		wantEdit   bool
		wantShare  bool
		wantShared bool
		wantBadge  string
	}{
		{"owner write", service.Task{IsOwner: true, Permission: service.PermissionWrite}, true, true, false, render.BadgeOwner},
		{"owner read", service.Task{IsOwner: true, Permission: service.PermissionRead}, true, true, false, render.BadgeOwner},
		{"owner no permission", service.Task{IsOwner: true}, true, true, false, render.BadgeOwner},
		{"shared write", service.Task{IsOwner: false, Permission: service.PermissionWrite}, true, false, true, render.BadgeShared},
		{"shared read", service.Task{IsOwner: false, Permission: service.PermissionRead}, false, false, true, render.BadgeShared},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := render.Describe(tt.task)
			if card.ShowEdit != tt.wantEdit || card.CanEdit != tt.wantEdit {
				t.Errorf("expected edit=%v, got ShowEdit=%v CanEdit=%v", tt.wantEdit, card.ShowEdit, card.CanEdit)
			}
			if card.ShowShare != tt.wantShare {
				t.Errorf("expected share=%v, got %v", tt.wantShare, card.ShowShare)
			}
			if card.IsShared != tt.wantShared {
				t.Errorf("expected shared=%v, got %v", tt.wantShared, card.IsShared)
			}
			if card.Badge != tt.wantBadge {
				t.Errorf("expected badge %q, got %q", tt.wantBadge, card.Badge)
			}
		})
	}
}

// Edit is shown iff owner or WRITE; Share iff owner. Checked over the whole input space.
func TestDescribe_Exhaustive(t *testing.T) {
	for _, owner := range []bool{true, false} {
		for _, perm := range []service.Permission{"", service.PermissionRead, service.PermissionWrite} {
			card := render.Describe(service.Task{IsOwner: owner, Permission: perm})
			if card.ShowEdit != (owner || perm == service.PermissionWrite) {
				t.Errorf("owner=%v perm=%q: ShowEdit=%v", owner, perm, card.ShowEdit)
			}
			if card.ShowShare != owner {
				t.Errorf("owner=%v perm=%q: ShowShare=%v", owner, perm, card.ShowShare)
			}
		}
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"line1\nline2", "line1 line2"},
		{"a\r\nb", "a  b"},
		{"\x1b[31mred\x1b[0m", "[31mred[0m"},
		{"bell\a", "bell"},
		{"rtl\u202eevil", "rtlevil"},
		{"<b>kept</b>", "<b>kept</b>"},
	}

	for _, tt := range tests {
		if got := render.Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTitle_Untitled(t *testing.T) {
	for _, in := range []string{"", "   ", "\n"} {
		if got := render.Title(in); got != "(untitled)" {
			t.Errorf("Title(%q) = %q, want (untitled)", in, got)
		}
	}
}

func TestFormatTasks(t *testing.T) {
	tasks := []service.Task{
		{ID: "1", Title: "Write report", Description: "Q3 numbers", IsOwner: true, Permission: service.PermissionWrite},
		{ID: "2", Title: "Review PR", IsOwner: false, Permission: service.PermissionWrite},
		{ID: "3", Title: "Read notes\x1b[2J", IsOwner: false, Permission: service.PermissionRead},
	}

	var buf bytes.Buffer
	render.FormatTasks(&buf, tasks)

	testutil.Golden(t, "tasks", buf.Bytes())
}
