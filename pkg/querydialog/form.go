package querydialog

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/goliatone/go-querydialog/pkg/model"
)

// Field names declared by Form.
const (
	FieldScope    = "scope"
	FieldCategory = "category"
)

// FormID identifies the declared query creation form.
const FormID = "query-create"

const maxCategoryLength = 255

// Form declares the inputs of the query creation dialog and their native
// constraints. Whether the category exists is a business rule checked by the
// controller, not here.
func Form() model.FormModel {
	return model.FormModel{
		ID:      FormID,
		Summary: "Create query",
		Fields: []model.Field{
			{
				Name:        FieldScope,
				Type:        model.FieldTypeSelect,
				Required:    true,
				Label:       "Scope",
				Description: "Broker or virtual host the query belongs to",
			},
			{
				Name:        FieldCategory,
				Type:        model.FieldTypeString,
				Required:    true,
				Label:       "Category",
				Placeholder: "Queue",
				Description: "Object category to query, e.g. Queue or Connection",
				Validations: []model.ValidationRule{
					{Kind: model.ValidationRuleMaxLength, Params: map[string]string{"value": strconv.Itoa(maxCategoryLength)}},
					{Kind: model.ValidationRulePattern, Params: map[string]string{"pattern": `^\S+$`}},
				},
			},
		},
	}
}

// NormalizeCategory derives the metadata lookup key from operator input: the
// first character is upper-cased and the rest is kept as typed, so "queue"
// and "Queue" both become "Queue". Multi-word input is not otherwise altered.
func NormalizeCategory(input string) string {
	if input == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(input)
	return string(unicode.ToUpper(r)) + input[size:]
}
