// Package view abstracts the rendering surface the session controller drives.
//
// The controller never touches widgets directly. It reads and writes named
// fields, toggles named elements, sets labels, raises alerts, and hands the
// task collection to the surface for rendering.
package view

import "taskclient/internal/service"

// Field names an editable input.
type Field string

const (
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldTaskTitle       Field = "taskTitle"
	FieldTaskDesc        Field = "taskDesc"
	FieldShareEmail      Field = "shareEmail"
	FieldSharePermission Field = "sharePermission"
)

// Element names a region that can be shown or hidden.
type Element string

const (
	AuthCard    Element = "auth-card"
	App         Element = "app"
	TaskModal   Element = "taskModal"
	ShareModal  Element = "shareModal"
	LoginTab    Element = "loginTab"
	RegisterTab Element = "registerTab"
)

// Label names a piece of read-only text.
type Label string

const (
	LabelAuthButton     Label = "authBtn"
	LabelTaskModalTitle Label = "taskModalTitle"
	LabelShareTaskTitle Label = "shareTaskTitle"
)

// Binding is the capability a rendering surface exposes to the controller.
type Binding interface {
	Value(f Field) string
	SetValue(f Field, v string)
	SetText(l Label, v string)
	Show(e Element)
	Hide(e Element)
	Alert(msg string)
	RenderTasks(tasks []service.Task)
}
