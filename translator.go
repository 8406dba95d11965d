package roadlocale

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"sort"
	"sync"
	"time"
)

// DefaultLocaleCode is used when no default locale is configured.
const DefaultLocaleCode = "en"

// LocaleInfo describes one registered locale.
type LocaleInfo struct {
	Code     string
	Name     string
	Language string
}

// Translator owns the locale registry and composes message resolution,
// plural-category selection, and placeholder interpolation. The registry is
// mutable: locales, messages, and fallback chains can be added at any time,
// guarded by a single lock. Lookups never observe a partially applied
// mutation; a freshly registered locale may be observed with an empty
// catalog before its messages arrive.
type Translator struct {
	mu          sync.RWMutex
	defaultCode string
	currentCode string
	locales     map[string]*Locale
	catalogs    map[string]*Catalog
	formatters  map[string]*Formatter
	fallbacks   map[string][]string

	log            *slog.Logger
	missingHandler func(locale, key string)

	// Messages staged by WithMessages, applied once construction has
	// settled the locale registry. Nil after New returns.
	staged []stagedMessages
}

type stagedMessages struct {
	code     string
	messages map[string]string
}

// Option configures a Translator during construction.
type Option func(*Translator) error

// New creates a Translator. Without options it registers a plain "en"
// locale as default and current. The default locale always has a catalog,
// even if it stays empty.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		defaultCode: DefaultLocaleCode,
		currentCode: DefaultLocaleCode,
		locales:     make(map[string]*Locale),
		catalogs:    make(map[string]*Catalog),
		formatters:  make(map[string]*Formatter),
		fallbacks:   make(map[string][]string),
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if _, ok := t.locales[t.defaultCode]; !ok {
		t.register(NewLocale(t.defaultCode, baseLanguage(t.defaultCode)))
	}

	for _, staged := range t.staged {
		catalog, ok := t.catalogs[staged.code]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrLocaleNotRegistered, staged.code)
		}
		catalog.AddAll(staged.messages)
	}
	t.staged = nil

	return t, nil
}

// WithDefaultLocale registers the locale and makes it the default and
// current locale.
func WithDefaultLocale(locale *Locale) Option {
	return func(t *Translator) error {
		if locale == nil {
			return ErrNilLocale
		}
		if locale.code == "" {
			return ErrEmptyLocaleCode
		}
		t.register(locale)
		t.defaultCode = locale.code
		t.currentCode = locale.code
		return nil
	}
}

// WithLocales registers additional locales.
func WithLocales(locales ...*Locale) Option {
	return func(t *Translator) error {
		for _, locale := range locales {
			if locale == nil {
				return ErrNilLocale
			}
			if locale.code == "" {
				return ErrEmptyLocaleCode
			}
			t.register(locale)
		}
		return nil
	}
}

// WithMessages loads simple messages into a locale's catalog. The locale
// must be registered by the time New returns, in any option order;
// otherwise construction fails with ErrLocaleNotRegistered.
func WithMessages(code string, messages map[string]string) Option {
	return func(t *Translator) error {
		t.staged = append(t.staged, stagedMessages{code: code, messages: messages})
		return nil
	}
}

// WithFallbacks sets the fallback chain consulted when a key is missing
// from the given locale.
func WithFallbacks(code string, fallbacks ...string) Option {
	return func(t *Translator) error {
		t.fallbacks[code] = append([]string(nil), fallbacks...)
		return nil
	}
}

// WithLogger sets the logger used for missing-translation diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(t *Translator) error {
		if log != nil {
			t.log = log
		}
		return nil
	}
}

// WithMissingKeyHandler sets a handler called whenever a key resolves to
// nothing. Useful for detecting untranslated keys during development.
func WithMissingKeyHandler(handler func(locale, key string)) Option {
	return func(t *Translator) error {
		t.missingHandler = handler
		return nil
	}
}

// RegisterLocale adds a locale to the registry with a fresh catalog and
// formatter. Registering an existing code replaces its locale and resets
// its catalog.
func (t *Translator) RegisterLocale(locale *Locale) error {
	if locale == nil {
		return ErrNilLocale
	}
	if locale.code == "" {
		return ErrEmptyLocaleCode
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.register(locale)
	return nil
}

// register must be called with the registry lock held (or during
// construction, before the Translator is shared).
func (t *Translator) register(locale *Locale) {
	t.locales[locale.code] = locale
	t.catalogs[locale.code] = NewCatalog()
	t.formatters[locale.code] = NewFormatter(locale)
}

// SetLocale switches the current locale. It fails with
// ErrLocaleNotRegistered, leaving the current locale unchanged, if the code
// is unknown.
func (t *Translator) SetLocale(code string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.locales[code]; !ok {
		return fmt.Errorf("%w: %q", ErrLocaleNotRegistered, code)
	}
	t.currentCode = code
	return nil
}

// CurrentLocale returns the current locale code.
func (t *Translator) CurrentLocale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentCode
}

// DefaultLocale returns the default locale code.
func (t *Translator) DefaultLocale() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.defaultCode
}

// SetFallbackChain sets the ordered fallback locales for a locale.
// Unregistered codes in the chain are skipped during lookup.
func (t *Translator) SetFallbackChain(code string, fallbacks ...string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fallbacks[code] = append([]string(nil), fallbacks...)
}

// Catalog returns the message catalog of a registered locale.
func (t *Translator) Catalog(code string) (*Catalog, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	catalog, ok := t.catalogs[code]
	return catalog, ok
}

// LoadMessages adds simple messages to a registered locale's catalog.
func (t *Translator) LoadMessages(code string, messages map[string]string) error {
	catalog, ok := t.Catalog(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrLocaleNotRegistered, code)
	}
	catalog.AddAll(messages)
	return nil
}

// ListLocales returns the registered locales sorted by code.
func (t *Translator) ListLocales() []LocaleInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()

	infos := make([]LocaleInfo, 0, len(t.locales))
	for _, locale := range t.locales {
		infos = append(infos, LocaleInfo{
			Code:     locale.code,
			Name:     locale.name,
			Language: locale.language,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Code < infos[j].Code })
	return infos
}

// Translate resolves a key for a locale and renders it with the given
// values. An empty locale means the current locale. A key that resolves to
// nothing is reported as a diagnostic and returned as-is; Translate never
// fails.
func (t *Translator) Translate(locale, context, key string, values ...M) string {
	if locale == "" {
		locale = t.CurrentLocale()
	}

	msg, ok := t.resolve(key, locale, context)
	if !ok {
		t.reportMissing(locale, key)
		return key
	}

	return t.formatterFor(locale).Format(msg.Value, mergeValues(values...))
}

// TranslatePlural resolves a key and renders the plural form matching n in
// the locale's language. The count is always bound to the "count"
// placeholder, overriding any caller-supplied value. An unregistered locale
// yields the key itself.
func (t *Translator) TranslatePlural(locale, context, key string, n int, values ...M) string {
	if locale == "" {
		locale = t.CurrentLocale()
	}

	t.mu.RLock()
	loc, registered := t.locales[locale]
	t.mu.RUnlock()
	if !registered {
		return key
	}

	msg, ok := t.resolve(key, locale, context)
	if !ok {
		t.reportMissing(locale, key)
		return key
	}

	template := msg.Value
	if text, ok := msg.Plural[Categorize(loc.language, n)]; ok {
		template = text
	}

	merged := mergeValues(values...)
	merged["count"] = n
	return t.formatterFor(locale).Format(template, merged)
}

// T translates a key in the current locale with no context.
func (t *Translator) T(key string, values ...M) string {
	return t.Translate("", "", key, values...)
}

// Tn translates a key with pluralization in the current locale with no
// context.
func (t *Translator) Tn(key string, n int, values ...M) string {
	return t.TranslatePlural("", "", key, n, values...)
}

// FormatNumber formats a number for the current locale.
func (t *Translator) FormatNumber(value float64, decimals int) string {
	return t.formatterFor(t.CurrentLocale()).FormatNumber(value, decimals)
}

// FormatCurrency formats a currency amount for the current locale.
func (t *Translator) FormatCurrency(value float64, symbolOverride ...string) string {
	return t.formatterFor(t.CurrentLocale()).FormatCurrency(value, symbolOverride...)
}

// FormatDate formats a date for the current locale.
func (t *Translator) FormatDate(date time.Time) string {
	return t.formatterFor(t.CurrentLocale()).FormatDate(date)
}

// formatterFor returns the locale's formatter, falling back to the default
// locale's.
func (t *Translator) formatterFor(locale string) *Formatter {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if f, ok := t.formatters[locale]; ok {
		return f
	}
	if f, ok := t.formatters[t.defaultCode]; ok {
		return f
	}
	return NewFormatter(nil)
}

func (t *Translator) reportMissing(locale, key string) {
	t.log.Warn("missing translation", "key", key, "locale", locale)
	if t.missingHandler != nil {
		t.missingHandler(locale, key)
	}
}

func mergeValues(values ...M) M {
	merged := make(M)
	for _, v := range values {
		maps.Copy(merged, v)
	}
	return merged
}
