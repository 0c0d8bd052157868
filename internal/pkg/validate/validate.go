// Package validate holds the error type request validation reports, rendered
// as "Validation error: <issue> at \"<path>\"".
package validate

import (
	"fmt"
	"strings"
)

type Issue struct {
	Path    string
	Message string
}

type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "Validation error"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, is := range e.Issues {
		if is.Path == "" {
			parts = append(parts, is.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s at %q", is.Message, is.Path))
	}
	return "Validation error: " + strings.Join(parts, "; ")
}

func (e *Error) Add(path, message string) {
	e.Issues = append(e.Issues, Issue{Path: path, Message: message})
}

// OrNil returns e as an error only when it carries issues.
func (e *Error) OrNil() error {
	if e == nil || len(e.Issues) == 0 {
		return nil
	}
	return e
}

// Expected formats a type mismatch, e.g. "Expected string, received null".
func Expected(want, got string) string {
	return fmt.Sprintf("Expected %s, received %s", want, got)
}

// Single wraps one issue.
func Single(path, message string) *Error {
	return &Error{Issues: []Issue{{Path: path, Message: message}}}
}
