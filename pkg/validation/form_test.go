package validation

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-querydialog/pkg/model"
)

func sampleForm() model.FormModel {
	return model.FormModel{
		ID: "sample",
		Fields: []model.Field{
			{Name: "scope", Required: true},
			{
				Name:     "category",
				Required: true,
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMinLength, Params: map[string]string{"value": "2"}},
					{Kind: model.ValidationRuleMaxLength, Params: map[string]string{"value": "8"}},
					{Kind: model.ValidationRulePattern, Params: map[string]string{"pattern": `^\S+$`}},
				},
			},
			{Name: "note"},
		},
	}
}

func TestFormValidator_Validate(t *testing.T) {
	v, err := NewFormValidator(sampleForm())
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}

	cases := []struct {
		name   string
		values map[string]string
		want   []Issue
	}{
		{
			name:   "valid",
			values: map[string]string{"scope": "B1", "category": "queue"},
		},
		{
			name:   "missing values",
			values: nil,
			want: []Issue{
				{Field: "scope", Message: "required"},
				{Field: "category", Message: "required"},
			},
		},
		{
			name:   "too short",
			values: map[string]string{"scope": "B1", "category": "q"},
			want:   []Issue{{Field: "category", Message: "min length 2"}},
		},
		{
			name:   "too long",
			values: map[string]string{"scope": "B1", "category": "queuequeue"},
			want:   []Issue{{Field: "category", Message: "max length 8"}},
		},
		{
			name:   "pattern",
			values: map[string]string{"scope": "B1", "category": "a queue"},
			want:   []Issue{{Field: "category", Message: "does not match required pattern"}},
		},
		{
			name:   "blank is missing",
			values: map[string]string{"scope": "  ", "category": "queue"},
			want:   []Issue{{Field: "scope", Message: "required"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := v.Validate(tc.values)
			if result.Valid != (len(tc.want) == 0) {
				t.Fatalf("valid = %v, issues %v", result.Valid, result.Issues)
			}
			if diff := cmp.Diff(tc.want, result.Issues); diff != "" {
				t.Fatalf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultMessages(t *testing.T) {
	result := Result{Issues: []Issue{
		{Field: "category", Message: "required"},
		{Field: "scope", Message: "required"},
	}}
	if diff := cmp.Diff([]string{"required"}, result.Messages("category")); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestNewFormValidator_RejectsMalformedForm(t *testing.T) {
	if _, err := NewFormValidator(model.FormModel{}); err == nil {
		t.Fatalf("expected error for form without id")
	}
}
