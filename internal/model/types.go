package model

import (
	"unicode"
	"unicode/utf8"
)

// FieldType is the simplified enum for dialog input kinds.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeSelect FieldType = "select"
)

const (
	ValidationRuleMinLength = "minLength"
	ValidationRuleMaxLength = "maxLength"
	ValidationRulePattern   = "pattern"
)

// ValidationRule represents a single native input constraint declared on a
// field. Length limits encode their threshold in Params["value"] while pattern
// rules keep the expression in Params["pattern"].
type ValidationRule struct {
	Kind   string            `json:"kind"`
	Params map[string]string `json:"params,omitempty"`
}

// Field models an individual input of a dialog form.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Required    bool              `json:"required"`
	Label       string            `json:"label,omitempty"`
	Placeholder string            `json:"placeholder,omitempty"`
	Description string            `json:"description,omitempty"`
	Validations []ValidationRule  `json:"validations,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel is the declared shape of a dialog form: its fields and the
// constraints the form-validation collaborator enforces.
type FormModel struct {
	ID          string            `json:"id"`
	Summary     string            `json:"summary,omitempty"`
	Description string            `json:"description,omitempty"`
	Fields      []Field           `json:"fields"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Field returns the field declared under name.
func (f FormModel) Field(name string) (Field, bool) {
	for _, field := range f.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// DisplayLabel returns the declared label, falling back to a title-cased name.
func (f Field) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return titleCase(f.Name)
}

func titleCase(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}
