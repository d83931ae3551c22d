package querydialog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-querydialog/pkg/validation"
)

var (
	// ErrEmptyHierarchy is returned when the structure offers no scope.
	ErrEmptyHierarchy = errors.New("querydialog: hierarchy has no selectable scope")
	// ErrNilCollaborator is returned when a required collaborator is missing.
	ErrNilCollaborator = errors.New("querydialog: collaborator is nil")
	// ErrClosed is returned by Submit once a terminal event has fired.
	ErrClosed = errors.New("querydialog: dialog already closed")
	// ErrNotReady is returned by Submit while the dialog has no usable scope
	// snapshot, e.g. after a failed Initialize.
	ErrNotReady = errors.New("querydialog: dialog is not initialized")

	// ErrInvalidFields classifies submissions rejected by field constraints.
	ErrInvalidFields = errors.New("querydialog: form contains invalid data")
	// ErrUnknownCategory classifies submissions whose category is not in the
	// metadata catalog.
	ErrUnknownCategory = errors.New("querydialog: specified category does not exist")
)

// SubmissionError describes a rejected submit. Kind is ErrInvalidFields or
// ErrUnknownCategory, so callers can classify it with errors.Is.
type SubmissionError struct {
	Kind     error
	Category string
	Issues   []validation.Issue
}

func (e *SubmissionError) Error() string {
	if e == nil || e.Kind == nil {
		return "querydialog: submission rejected"
	}
	switch {
	case errors.Is(e.Kind, ErrUnknownCategory):
		return fmt.Sprintf("%v: %q", e.Kind, e.Category)
	case len(e.Issues) > 0:
		parts := make([]string, 0, len(e.Issues))
		for _, issue := range e.Issues {
			parts = append(parts, issue.Field+": "+issue.Message)
		}
		return fmt.Sprintf("%v (%s)", e.Kind, strings.Join(parts, ", "))
	default:
		return e.Kind.Error()
	}
}

func (e *SubmissionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// OperatorMessage returns the text shown to the operator when the submit is
// rejected.
func (e *SubmissionError) OperatorMessage() string {
	if e != nil && errors.Is(e.Kind, ErrUnknownCategory) {
		return "Specified category does not exist. Please enter valid category"
	}
	return "Form contains invalid data. Please correct first"
}
