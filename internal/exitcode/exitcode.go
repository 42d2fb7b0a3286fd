// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid value, not found,
	// task already in the requested state).
	UserError = 1

	// ConfigError indicates an unreadable or invalid config file.
	ConfigError = 2

	// InternalError indicates a failure that is not the user's fault.
	InternalError = 3
)
