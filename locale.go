package roadlocale

// Direction is the text direction of a locale.
type Direction uint8

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// Locale holds the configuration for a single locale: identity, text
// direction, date/time layouts (Go reference-time layouts), and number and
// currency formatting rules. It is immutable after construction and safe
// for concurrent use.
type Locale struct {
	code               string
	language           string
	region             string
	name               string
	direction          Direction
	dateFormat         string
	timeFormat         string
	dateTimeFormat     string
	decimalSeparator   string
	thousandsSeparator string
	currencySymbol     string
	currencyFormat     string
}

// LocaleOption configures a Locale during construction.
type LocaleOption func(*Locale)

// NewLocale creates a Locale for the given code (e.g. "en-US") and base
// language (e.g. "en"). Without options it uses ISO-style date layouts,
// period decimal separator, comma thousands separator, and a "$" currency
// symbol placed directly before the amount.
func NewLocale(code, language string, opts ...LocaleOption) *Locale {
	l := &Locale{
		code:               code,
		language:           language,
		name:               code,
		direction:          DirectionLTR,
		dateFormat:         "2006-01-02",
		timeFormat:         "15:04:05",
		dateTimeFormat:     "2006-01-02 15:04:05",
		decimalSeparator:   ".",
		thousandsSeparator: ",",
		currencySymbol:     "$",
		currencyFormat:     "{symbol}{amount}",
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithName sets the human-readable locale name.
func WithName(name string) LocaleOption {
	return func(l *Locale) {
		l.name = name
	}
}

// WithRegion sets the region subtag (e.g. "US").
func WithRegion(region string) LocaleOption {
	return func(l *Locale) {
		l.region = region
	}
}

// WithDirection sets the text direction.
func WithDirection(d Direction) LocaleOption {
	return func(l *Locale) {
		l.direction = d
	}
}

// WithDateFormat sets the date layout (Go time layout).
func WithDateFormat(layout string) LocaleOption {
	return func(l *Locale) {
		l.dateFormat = layout
	}
}

// WithTimeFormat sets the time layout (Go time layout).
func WithTimeFormat(layout string) LocaleOption {
	return func(l *Locale) {
		l.timeFormat = layout
	}
}

// WithDateTimeFormat sets the datetime layout (Go time layout).
func WithDateTimeFormat(layout string) LocaleOption {
	return func(l *Locale) {
		l.dateTimeFormat = layout
	}
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) LocaleOption {
	return func(l *Locale) {
		l.decimalSeparator = sep
	}
}

// WithThousandsSeparator sets the thousands separator.
func WithThousandsSeparator(sep string) LocaleOption {
	return func(l *Locale) {
		l.thousandsSeparator = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) LocaleOption {
	return func(l *Locale) {
		l.currencySymbol = symbol
	}
}

// WithCurrencyFormat sets the currency layout pattern. The pattern must
// contain the {symbol} and {amount} tokens, e.g. "{amount} {symbol}".
func WithCurrencyFormat(pattern string) LocaleOption {
	return func(l *Locale) {
		l.currencyFormat = pattern
	}
}

// Code returns the locale identifier, e.g. "en-US".
func (l *Locale) Code() string {
	return l.code
}

// Language returns the base language tag, e.g. "en".
func (l *Locale) Language() string {
	return l.language
}

// Region returns the region subtag, if any.
func (l *Locale) Region() string {
	return l.region
}

// Name returns the human-readable locale name.
func (l *Locale) Name() string {
	return l.name
}

// Direction returns the text direction.
func (l *Locale) Direction() Direction {
	return l.direction
}
