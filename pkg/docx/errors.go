package docx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyKey is returned when a dictionary contains an empty search string.
	ErrEmptyKey = errors.New("dictionary key is empty")
	// ErrPartNotFound is returned when a package has no part of the given name.
	ErrPartNotFound = errors.New("part not found")
	// ErrRelationshipNotFound is returned when a relationship id does not resolve.
	ErrRelationshipNotFound = errors.New("relationship not found")
)

// SubstitutionError reports a text leaf whose new value could not be stored.
// Leaf is the position of the leaf in traversal order. Leaves before it have
// already been rewritten.
type SubstitutionError struct {
	Leaf int
	Err  error
}

func (e *SubstitutionError) Error() string {
	return fmt.Sprintf("substitution failed at text leaf %d: %v", e.Leaf, e.Err)
}

func (e *SubstitutionError) Unwrap() error {
	return e.Err
}

// DocumentError represents an error during document operations
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

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// ValidationIssue represents a single validation problem
type ValidationIssue struct {
	Field   string
	Message string
}

// ValidationError represents multiple validation issues
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

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	var de *DocumentError
	return errors.As(err, &de)
}

// IsSubstitutionError checks if an error is a substitution error
func IsSubstitutionError(err error) bool {
	var se *SubstitutionError
	return errors.As(err, &se)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
