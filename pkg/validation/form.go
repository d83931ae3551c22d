package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-querydialog/pkg/model"
)

// Issue represents a field-level validation failure.
type Issue struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// Result captures the outcome of validating submitted form values.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Messages returns the issue messages for field in declaration order.
func (r Result) Messages(field string) []string {
	var out []string
	for _, issue := range r.Issues {
		if issue.Field == field {
			out = append(out, issue.Message)
		}
	}
	return out
}

// FormValidator checks submitted values against the native constraints
// declared on a form: required, minLength, maxLength and pattern. It knows
// nothing about business rules.
type FormValidator struct {
	fields []fieldRules
}

type fieldRules struct {
	name     string
	required bool
	minLen   *int
	maxLen   *int
	pattern  *regexp.Regexp
}

// NewFormValidator compiles the constraints declared on form.
func NewFormValidator(form model.FormModel) (*FormValidator, error) {
	if err := form.Validate(); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	v := &FormValidator{fields: make([]fieldRules, 0, len(form.Fields))}
	for _, field := range form.Fields {
		v.fields = append(v.fields, collectRules(field))
	}
	return v, nil
}

// MustFormValidator is NewFormValidator for statically declared forms.
func MustFormValidator(form model.FormModel) *FormValidator {
	v, err := NewFormValidator(form)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate checks values keyed by field name. Missing keys are treated as
// empty input. Every failing field contributes one issue.
func (v *FormValidator) Validate(values map[string]string) Result {
	result := Result{Valid: true}
	if v == nil {
		return result
	}
	for _, rules := range v.fields {
		if err := rules.validate(values[rules.name]); err != nil {
			result.Valid = false
			result.Issues = append(result.Issues, Issue{Field: rules.name, Message: err.Error()})
		}
	}
	return result
}

func collectRules(field model.Field) fieldRules {
	rules := fieldRules{name: field.Name, required: field.Required}
	for _, rule := range field.Validations {
		switch rule.Kind {
		case model.ValidationRuleMinLength:
			if val, err := strconv.Atoi(rule.Params["value"]); err == nil {
				rules.minLen = &val
			}
		case model.ValidationRuleMaxLength:
			if val, err := strconv.Atoi(rule.Params["value"]); err == nil {
				rules.maxLen = &val
			}
		case model.ValidationRulePattern:
			if expr := rule.Params["pattern"]; expr != "" {
				rules.pattern = regexp.MustCompile(expr)
			}
		}
	}
	return rules
}

func (r fieldRules) validate(value string) error {
	if strings.TrimSpace(value) == "" {
		if r.required {
			return errors.New("required")
		}
		return nil
	}
	length := utf8.RuneCountInString(value)
	if r.minLen != nil && length < *r.minLen {
		return fmt.Errorf("min length %d", *r.minLen)
	}
	if r.maxLen != nil && length > *r.maxLen {
		return fmt.Errorf("max length %d", *r.maxLen)
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		return errors.New("does not match required pattern")
	}
	return nil
}
