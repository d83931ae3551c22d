package model

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	errFormIDMissing    = errors.New("model: form id is required")
	errFieldNameMissing = errors.New("model: field name is required")
)

// Validate checks that a declared form is well formed: field names are set
// and unique, and every validation rule carries usable parameters.
func (f FormModel) Validate() error {
	if strings.TrimSpace(f.ID) == "" {
		return errFormIDMissing
	}
	seen := make(map[string]struct{}, len(f.Fields))
	for _, field := range f.Fields {
		name := strings.TrimSpace(field.Name)
		if name == "" {
			return errFieldNameMissing
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("model: duplicate field %q", name)
		}
		seen[name] = struct{}{}
		for _, rule := range field.Validations {
			if err := validateRule(rule); err != nil {
				return fmt.Errorf("model: field %q: %w", name, err)
			}
		}
	}
	return nil
}

func validateRule(rule ValidationRule) error {
	switch rule.Kind {
	case ValidationRuleMinLength, ValidationRuleMaxLength:
		if _, err := strconv.Atoi(rule.Params["value"]); err != nil {
			return fmt.Errorf("%s requires an integer value", rule.Kind)
		}
	case ValidationRulePattern:
		if _, err := regexp.Compile(rule.Params["pattern"]); err != nil {
			return fmt.Errorf("pattern: %w", err)
		}
	default:
		return fmt.Errorf("unknown validation rule %q", rule.Kind)
	}
	return nil
}
