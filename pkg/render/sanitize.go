package render

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy
)

// SanitizeLabel strips markup from object names and operator input before
// they are displayed. Labels are plain text; entities produced by the policy
// are unescaped again so names such as "a&b" survive unchanged.
func SanitizeLabel(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	cleaned := labelSanitizer().Sanitize(raw)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizeLabels applies SanitizeLabel to every label.
func SanitizeLabels(raw []string) []string {
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, len(raw))
	for idx, label := range raw {
		out[idx] = SanitizeLabel(label)
	}
	return out
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		labelPolicy = bluemonday.StrictPolicy()
	})
	return labelPolicy
}
