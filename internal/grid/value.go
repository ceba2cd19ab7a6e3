package grid

import "fmt"

// FormatValue renders a raw cell value for display and measurement.
// Nil renders as the empty string; strings pass through unchanged.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
