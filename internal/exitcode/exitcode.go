// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty field, task not found).
	UserError = 1

	// AuthError indicates rejected credentials or a bad config.
	AuthError = 2

	// BackendError indicates an API or network error.
	BackendError = 3
)
