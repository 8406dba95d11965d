package roadlocale

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Formatter renders numbers, currency amounts, and dates according to one
// locale's rules. It is immutable and safe for concurrent use.
type Formatter struct {
	locale *Locale
}

// NewFormatter creates a Formatter for the given locale. A nil locale
// defaults to en-US.
func NewFormatter(locale *Locale) *Formatter {
	if locale == nil {
		locale = LocaleEnUS()
	}
	return &Formatter{locale: locale}
}

// Locale returns the locale this formatter renders for.
func (f *Formatter) Locale() *Locale {
	return f.locale
}

// FormatNumber renders a number with the given number of fractional digits
// and thousands grouping, using the locale's separators. The number is first
// rendered with generic separators, then both are swapped for the locale's
// in a single pass so that one substitution cannot corrupt the other.
func (f *Formatter) FormatNumber(value float64, decimals int) string {
	generic := groupedFixed(value, decimals)
	return strings.NewReplacer(
		",", f.locale.thousandsSeparator,
		".", f.locale.decimalSeparator,
	).Replace(generic)
}

// FormatDecimal renders a number with an explicit number of decimal places.
func (f *Formatter) FormatDecimal(value float64, places int) string {
	return f.FormatNumber(value, places)
}

// FormatCurrency renders a currency amount at two decimal places inside the
// locale's currency layout pattern. An optional symbol overrides the
// locale's. The sign is applied to the whole formatted string, never inside
// the pattern.
func (f *Formatter) FormatCurrency(value float64, symbolOverride ...string) string {
	symbol := f.locale.currencySymbol
	if len(symbolOverride) > 0 && symbolOverride[0] != "" {
		symbol = symbolOverride[0]
	}

	amount := f.FormatDecimal(math.Abs(value), 2)
	formatted := strings.NewReplacer(
		"{symbol}", symbol,
		"{amount}", amount,
	).Replace(f.locale.currencyFormat)

	if value < 0 {
		formatted = "-" + formatted
	}
	return formatted
}

// FormatDate renders the date portion of t with the locale's date layout.
func (f *Formatter) FormatDate(t time.Time) string {
	return t.Format(f.locale.dateFormat)
}

// FormatTime renders t with the locale's time layout.
func (f *Formatter) FormatTime(t time.Time) string {
	return t.Format(f.locale.timeFormat)
}

// FormatDateTime renders t with the locale's datetime layout.
func (f *Formatter) FormatDateTime(t time.Time) string {
	return t.Format(f.locale.dateTimeFormat)
}

// groupedFixed renders value with the given fractional digits, a generic
// "." decimal point, and generic "," thousands grouping.
func groupedFixed(value float64, decimals int) string {
	s := strconv.FormatFloat(value, 'f', decimals, 64)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	grouped := groupThousands(intPart)
	if hasFrac {
		return sign + grouped + "." + fracPart
	}
	return sign + grouped
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)

	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
