package error

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrorCategory classifies errors by how the command loop handles them.
type ErrorCategory int

const (
	// ErrCategoryUser represents errors caused by the line the user typed.
	// The loop reports them and keeps running.
	ErrCategoryUser ErrorCategory = iota

	// ErrCategorySystem represents failures of the loop's own I/O, such as
	// a broken input stream. The loop stops on these.
	ErrCategorySystem
)

func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryUser:
		return "USER"
	case ErrCategorySystem:
		return "SYSTEM"
	default:
		return "UNKNOWN"
	}
}

// Error codes.
const (
	CodeUnrecognizedMetaCommand = "UNRECOGNIZED_META_COMMAND"
	CodeUnrecognizedInput       = "UNRECOGNIZED_INPUT"
	CodeInsertParseFailed       = "INSERT_PARSE_FAILED"
	CodeReadInputFailed         = "READ_INPUT_FAILED"
	CodeWriteOutputFailed       = "WRITE_OUTPUT_FAILED"
	CodeImportFailed            = "IMPORT_FAILED"
)

// DBError represents a structured error with context information.
type DBError struct {
	// Code is a unique identifier for this error type (e.g., "UNRECOGNIZED_INPUT").
	Code string

	// Category classifies the error for appropriate handling strategy.
	Category ErrorCategory

	// Message is the text shown to the user.
	Message string

	// Detail provides additional context about the specific error instance.
	Detail string

	// Operation identifies what was being done, e.g. "Execute" or "ReadLine".
	Operation string

	// Component identifies where the error originated, e.g. "Database" or "REPL".
	Component string

	// Cause is the underlying error, if any.
	Cause error

	// Stack contains the call stack where this error was created.
	Stack []uintptr
}

// New creates a new DBError with the specified code, category, and message.
func New(category ErrorCategory, code, message string) *DBError {
	return &DBError{
		Code:     code,
		Category: category,
		Message:  message,
		Stack:    captureStack(),
	}
}

// Wrap wraps an existing error with context information.
// If the error is already a DBError, it enriches the existing error with
// operation and component context (only if not already set).
func Wrap(err error, code, operation, component string) *DBError {
	if err == nil {
		return nil
	}

	var dbErr *DBError
	if errors.As(err, &dbErr) {
		if dbErr.Operation == "" {
			dbErr.Operation = operation
		}
		if dbErr.Component == "" {
			dbErr.Component = component
		}
		return dbErr
	}

	return &DBError{
		Code:      code,
		Category:  ErrCategorySystem,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
		Stack:     captureStack(),
	}
}

// WithDetail sets Detail and returns the error for chaining.
func (e *DBError) WithDetail(detail string) *DBError {
	e.Detail = detail
	return e
}

// WithCause sets Cause and returns the error for chaining.
func (e *DBError) WithCause(cause error) *DBError {
	e.Cause = cause
	return e
}

// In sets Operation and Component and returns the error for chaining.
func (e *DBError) In(operation, component string) *DBError {
	e.Operation = operation
	e.Component = component
	return e
}

// IsUser reports whether err is a DBError in ErrCategoryUser.
func IsUser(err error) bool {
	var dbErr *DBError
	return errors.As(err, &dbErr) && dbErr.Category == ErrCategoryUser
}

// CodeOf returns the code of the first DBError in err's chain, or "".
func CodeOf(err error) string {
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr.Code
	}
	return ""
}

// captureStack skips runtime.Callers, captureStack and the constructor.
func captureStack() []uintptr {
	const depth = 32
	var pcs [depth]uintptr
	n := runtime.Callers(3, pcs[:])
	return pcs[0:n]
}

// Error implements the standard Go error interface
//
// The format follows the pattern:
// [ERROR_CODE] Message: Detail (operation: Operation, component: Component) caused by: underlying error
func (e *DBError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(": %s", e.Detail))
	}

	if e.Operation != "" {
		b.WriteString(fmt.Sprintf(" (operation: %s", e.Operation))
		if e.Component != "" {
			b.WriteString(fmt.Sprintf(", component: %s", e.Component))
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(" caused by: %v", e.Cause))
	}

	return b.String()
}

// Unwrap returns the underlying cause error, enabling error chain traversal
// with errors.Is and errors.As.
func (e *DBError) Unwrap() error {
	return e.Cause
}

// FormatStack returns a human-readable stack trace for debugging purposes.
func (e *DBError) FormatStack() string {
	if len(e.Stack) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(e.Stack)

	b.WriteString("Stack trace:\n")
	for {
		f, more := frames.Next()
		b.WriteString(fmt.Sprintf("  %s\n    %s:%d\n",
			f.Function, f.File, f.Line))
		if !more {
			break
		}
	}

	return b.String()
}
