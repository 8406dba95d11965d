package roadlocale

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// M is a map of placeholder names to values.
type M map[string]any

// Placeholders use the form {name} or {name:formatSpec}, where name is a
// \w+ identifier. There is no escaping mechanism: a "{" not followed by an
// identifier and a closing "}" is left untouched.
var placeholderPattern = regexp.MustCompile(`\{(\w+)(?::([^}]+))?\}`)

// Format expands the placeholders in template against the given values.
// A placeholder whose name is absent from values stays in the output
// verbatim, so partially filled templates remain visibly incomplete.
// Recognized format specs are "number", "currency", "date", "time",
// "datetime", and "decimal:<N>"; anything else renders the value with its
// default string representation.
func (f *Formatter) Format(template string, values M) string {
	if len(values) == 0 {
		return template
	}

	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		groups := placeholderPattern.FindStringSubmatch(match)
		name, spec := groups[1], groups[2]

		value, ok := values[name]
		if !ok {
			return match
		}
		if spec == "" {
			return stringify(value)
		}
		return f.applySpec(value, spec)
	})
}

func (f *Formatter) applySpec(value any, spec string) string {
	switch {
	case spec == "number":
		if n, ok := toFloat(value); ok {
			return f.FormatNumber(n, 0)
		}
	case spec == "currency":
		if n, ok := toFloat(value); ok {
			return f.FormatCurrency(n)
		}
	case spec == "date":
		if t, ok := value.(time.Time); ok {
			return f.FormatDate(t)
		}
	case spec == "time":
		if t, ok := value.(time.Time); ok {
			return f.FormatTime(t)
		}
	case spec == "datetime":
		if t, ok := value.(time.Time); ok {
			return f.FormatDateTime(t)
		}
	case strings.HasPrefix(spec, "decimal:"):
		places, err := strconv.Atoi(strings.TrimPrefix(spec, "decimal:"))
		if err != nil || places < 0 {
			break
		}
		if n, ok := toFloat(value); ok {
			return f.FormatDecimal(n, places)
		}
	}
	return stringify(value)
}

func stringify(value any) string {
	return fmt.Sprintf("%v", value)
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
