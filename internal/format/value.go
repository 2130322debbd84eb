package format

import (
	"fmt"
	"strconv"
	"strings"
)

// AsString renders a scanned database value for display.
func AsString(v any) string {
	switch val := v.(type) {
	case nil:
		return "N/A"
	case string:
		if val == "" {
			return "N/A"
		}
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		s := strconv.FormatFloat(val, 'f', 2, 64)
		s = strings.TrimRight(s, "0")
		return strings.TrimRight(s, ".")
	case bool:
		if val {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprintf("%v", val)
	}
}

// label turns a result column name into a display label.
func label(col string) string {
	return strings.ReplaceAll(col, "_", " ")
}
