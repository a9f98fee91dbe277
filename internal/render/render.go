// Package render turns tasks into display text.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"taskclient/internal/service"
)

const (
	// BadgeOwner labels tasks the current user owns.
	BadgeOwner = "✓ Owner"

	// BadgeShared labels tasks another user shared with the current user.
	BadgeShared = "↓ Shared with you"
)

// Card is the display model of a single task.
type Card struct {
	ID          service.TaskID
	Title       string
	Description string
	CanEdit     bool
	IsShared    bool
	ShowEdit    bool
	ShowShare   bool
	Badge       string
}

// Describe derives the display model of a task. It is pure: the same task
// always yields the same card.
func Describe(task service.Task) Card {
	canEdit := task.IsOwner || task.Permission == service.PermissionWrite
	isShared := !task.IsOwner

	badge := BadgeOwner
	if isShared {
		badge = BadgeShared
	}

	return Card{
		ID:          task.ID,
		Title:       Title(task.Title),
		Description: Sanitize(task.Description),
		CanEdit:     canEdit,
		IsShared:    isShared,
		ShowEdit:    canEdit,
		ShowShare:   task.IsOwner,
		Badge:       badge,
	}
}

// Actions returns the action names a card offers, in display order.
func (c Card) Actions() []string {
	var actions []string
	if c.ShowEdit {
		actions = append(actions, "edit")
	}
	if c.ShowShare {
		actions = append(actions, "share")
	}
	return actions
}

// FormatTask writes one task.
// Format: "{N:>4}  #{ID}  {TITLE}  {BADGE}[  [action]...]\n", followed by an
// indented description line when the task has one.
func FormatTask(w io.Writer, num int, task service.Task) {
	card := Describe(task)

	var b strings.Builder
	fmt.Fprintf(&b, "%4d  #%s  %s  %s", num, Sanitize(string(card.ID)), card.Title, card.Badge)
	for _, a := range card.Actions() {
		fmt.Fprintf(&b, "  [%s]", a)
	}
	fmt.Fprintln(w, b.String())

	if card.Description != "" {
		fmt.Fprintf(w, "      %s\n", card.Description)
	}
}

// FormatTasks writes the whole list, replacing nothing: callers clear the
// surface themselves.
func FormatTasks(w io.Writer, tasks []service.Task) {
	for i, task := range tasks {
		FormatTask(w, i+1, task)
	}
}

// Title normalizes a task title for display.
// Empty or whitespace-only titles become "(untitled)".
func Title(title string) string {
	title = Sanitize(title)
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// Sanitize makes untrusted text safe to print on a terminal.
// Newlines and tabs become spaces; every other control character, including
// the ESC that starts terminal escape sequences, is dropped.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		case r >= 0x200b && r <= 0x200f, r >= 0x202a && r <= 0x202e, r >= 0x2066 && r <= 0x2069:
			// zero-width and bidi overrides
			return -1
		}
		return r
	}, s)
}
