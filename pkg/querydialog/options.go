package querydialog

import (
	"log/slog"

	"github.com/goliatone/go-querydialog/pkg/validation"
)

// FormValidator is the form-validation collaborator consulted in the first
// submit phase. Values are keyed by the field names declared in Form.
type FormValidator interface {
	Validate(values map[string]string) validation.Result
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. A discarding logger is used when
// omitted.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFormValidator overrides the field-level validator. The default checks
// the constraints declared by Form.
func WithFormValidator(v FormValidator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithConfirmControl registers the confirm control that receives every
// validity change, including the one computed at initialisation.
func WithConfirmControl(ctrl ConfirmControl) Option {
	return func(c *Controller) {
		c.confirm = ctrl
	}
}

// WithInitialCategory preselects category input before the first
// evaluation.
func WithInitialCategory(input string) Option {
	return func(c *Controller) {
		c.categoryInput = input
	}
}
