package termo

import (
	"fmt"
	"strings"
)

// DocumentError represents an error during document operations.
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error.
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// ReplaceError reports a substitution whose character offsets could not
// be resolved to runs. The paragraph text and the run-length
// bookkeeping disagree, which is a logic defect, never user input.
type ReplaceError struct {
	Key    string
	Offset int
}

func (e *ReplaceError) Error() string {
	return fmt.Sprintf("replace error: offset %d for key %q does not resolve to any run", e.Offset, e.Key)
}

// NewReplaceError creates a new replace error.
func NewReplaceError(key string, offset int) error {
	return &ReplaceError{Key: key, Offset: offset}
}

// ValidationIssue represents a single validation problem.
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues, such as
// placeholder keys that matched nowhere in strict mode.
type ValidationError struct {
	Issues []ValidationIssue
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "validation error"
	}

	if len(e.Issues) == 1 {
		return fmt.Sprintf("validation error: %s - %s", e.Issues[0].Field, e.Issues[0].Message)
	}

	var parts []string
	parts = append(parts, fmt.Sprintf("%d validation issues:", len(e.Issues)))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("  %s: %s", issue.Field, issue.Message))
	}
	return strings.Join(parts, "\n")
}

// IsDocumentError checks if an error is a document error.
func IsDocumentError(err error) bool {
	_, ok := err.(*DocumentError)
	return ok
}

// IsReplaceError checks if an error is a replace error.
func IsReplaceError(err error) bool {
	_, ok := err.(*ReplaceError)
	return ok
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}
