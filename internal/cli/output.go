package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Parse failure
	ExitCommandError = 2 // Command error (missing file, unusable database, ...)
)

// Error codes used in JSON output.
const (
	ErrCodeParse    = "PARSE_ERROR"
	ErrCodeNotFound = "NOT_FOUND"
	ErrCodeStore    = "STORE_ERROR"
	ErrCodeGeneric  = "ERROR"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error { return e.Err }

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // verbose/diagnostic output, kept off stdout so JSON stays parseable
	Verbose   bool
}

// Response is the standard JSON response shape for CLI output.
type Response struct {
	Status string     `json:"status"` // "ok" or "error"
	Data   any        `json:"data,omitempty"`
	Error  *RespError `json:"error,omitempty"`
}

// RespError is the error structure for JSON responses.
type RespError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON outputs a successful payload in JSON format.
func (f *OutputFormatter) JSON(data any) error {
	return json.NewEncoder(f.Writer).Encode(Response{Status: "ok", Data: data})
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(Response{
			Status: "error",
			Error:  &RespError{Code: code, Message: message, Details: details},
		})
	}

	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Textf writes formatted text output (text mode only).
func (f *OutputFormatter) Textf(format string, args ...any) {
	fmt.Fprintf(f.Writer, format, args...)
}

// VerboseLog outputs a message only if verbose mode is enabled. Uses
// ErrWriter if set so JSON output is never corrupted.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
