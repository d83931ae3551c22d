package render

import (
	"errors"
	"strings"

	"github.com/goliatone/go-querydialog/pkg/querydialog"
)

// ErrorMapping splits a rejected submit into field-level and form-level
// messages keyed by the field names declared on the dialog form.
type ErrorMapping struct {
	Fields map[string][]string
	Form   []string
}

// HasErrors reports whether any message was mapped.
func (m ErrorMapping) HasErrors() bool {
	return len(m.Fields) > 0 || len(m.Form) > 0
}

// MapSubmitError converts an error returned by Controller.Submit into
// messages a dialog can display. The operator message always lands at form
// level; field issues are attached to their field, and an unknown category is
// attached to the category field. Errors that are not submission errors are
// reported at form level with their own text.
func MapSubmitError(err error) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}
	if err == nil {
		mapping.Fields = nil
		return mapping
	}

	var subErr *querydialog.SubmissionError
	if !errors.As(err, &subErr) {
		mapping.Fields = nil
		mapping.Form = normalizeMessages([]string{err.Error()})
		return mapping
	}

	mapping.Form = []string{subErr.OperatorMessage()}
	if errors.Is(subErr, querydialog.ErrUnknownCategory) {
		mapping.Fields[querydialog.FieldCategory] = []string{"unknown category " + quote(subErr.Category)}
	}
	for _, issue := range subErr.Issues {
		field := strings.TrimSpace(issue.Field)
		if field == "" {
			mapping.Form = append(mapping.Form, issue.Message)
			continue
		}
		mapping.Fields[field] = append(mapping.Fields[field], issue.Message)
	}

	for field, messages := range mapping.Fields {
		mapping.Fields[field] = normalizeMessages(messages)
		if mapping.Fields[field] == nil {
			delete(mapping.Fields, field)
		}
	}
	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

// Lines flattens the mapping into display lines, form messages first and then
// field messages in the given field order.
func (m ErrorMapping) Lines(fieldOrder ...string) []string {
	lines := append([]string(nil), m.Form...)
	for _, field := range fieldOrder {
		for _, message := range m.Fields[field] {
			lines = append(lines, field+": "+message)
		}
	}
	return lines
}

func quote(value string) string {
	return "\"" + value + "\""
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
