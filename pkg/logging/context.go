package logging

import (
	"log/slog"
)

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("repl")
//	log.Info("loop started")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithStatement creates a logger tagged with the statement kind being run.
//
// Example:
//
//	log := logging.WithStatement("INSERT")
//	log.Debug("row appended", "id", id)
func WithStatement(statement string) *slog.Logger {
	return GetLogger().With("statement", statement)
}

// WithError creates a logger with error context.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
