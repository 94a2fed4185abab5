package domain

import "strings"

// FilterSelection maps a filter category to its active value: a string, a bool or a []string.
// A key is present only while its value is non-empty.
type FilterSelection map[string]any

// IsEmptyFilterValue reports whether v imposes no constraint.
func IsEmptyFilterValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	case bool:
		return !val
	case []string:
		return len(val) == 0
	default:
		return false
	}
}
