package roadlocale

import (
	"sort"

	"golang.org/x/text/language"
)

// MatchAcceptLanguage picks the best match for an Accept-Language header
// from the available locale codes, honoring quality values. An empty or
// unparseable header, or no usable match, yields the first available code.
func MatchAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}

	codes := make([]string, 0, len(available))
	tags := make([]language.Tag, 0, len(available))
	for _, code := range available {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		codes = append(codes, code)
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return available[0]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return available[0]
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return available[0]
	}
	return codes[index]
}

// NegotiateLocale picks the best registered locale for an Accept-Language
// header, preferring the default locale when nothing matches. The result is
// always a registered code, suitable for SetLocale.
func (t *Translator) NegotiateLocale(header string) string {
	t.mu.RLock()
	others := make([]string, 0, len(t.locales))
	for code := range t.locales {
		if code != t.defaultCode {
			others = append(others, code)
		}
	}
	available := append([]string{t.defaultCode}, others...)
	t.mu.RUnlock()

	sort.Strings(available[1:])

	return MatchAcceptLanguage(header, available)
}
