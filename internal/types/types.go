package types

import (
	"fmt"
	"strings"
)

// StringPtr converts a string to a pointer to a string
func StringPtr(s string) *string {
	return &s
}

// FirstNonEmpty returns the first value that is not empty after trimming
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// MapString returns the string stored at key in m.
// Numbers and booleans are formatted; missing, null and other values yield "".
func MapString(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	switch v := m[key].(type) {
	case string:
		return v
	case float64, bool, int, int64:
		return fmt.Sprint(v)
	}
	return ""
}

// MapObject returns the nested object stored at key in m, or nil
func MapObject(m map[string]interface{}, key string) map[string]interface{} {
	if m == nil {
		return nil
	}
	obj, _ := m[key].(map[string]interface{})
	return obj
}
