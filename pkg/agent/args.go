package agent

import "fmt"

// Args are the raw arguments of one tool call, as decoded from JSON.
// Accessors tolerate the numeric types JSON decoding produces.
type Args map[string]any

// Has reports whether the key is present at all.
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Float returns a numeric argument.
func (a Args) Float(key string) (float64, bool) {
	switch v := a[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// String returns a string argument.
func (a Args) String(key string) (string, bool) {
	v, ok := a[key].(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Bool returns a boolean argument, false when absent or mistyped.
func (a Args) Bool(key string) bool {
	v, _ := a[key].(bool)
	return v
}

// Strings returns a string-array argument.
func (a Args) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// missingParam is the uniform validation failure for an absent
// required argument.
func missingParam(name string) string {
	return fmt.Sprintf("Error: Missing required parameter '%s'.", name)
}
