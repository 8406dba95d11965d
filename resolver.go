package roadlocale

// resolve finds the best message for a key across locales: the locale's own
// catalog first, then each locale of its fallback chain in order, then the
// default locale's catalog.
func (t *Translator) resolve(key, locale, context string) (Message, bool) {
	for _, catalog := range t.lookupOrder(locale) {
		if msg, ok := catalog.Get(key, context); ok {
			return msg, true
		}
	}
	return Message{}, false
}

// lookupOrder snapshots the catalogs consulted for a locale. Unregistered
// codes, including unregistered entries in a fallback chain, are simply
// skipped. The default locale is appended only when the locale is not the
// default itself, so it is never consulted twice.
func (t *Translator) lookupOrder(locale string) []*Catalog {
	t.mu.RLock()
	defer t.mu.RUnlock()

	order := make([]*Catalog, 0, len(t.fallbacks[locale])+2)
	if catalog, ok := t.catalogs[locale]; ok {
		order = append(order, catalog)
	}
	for _, code := range t.fallbacks[locale] {
		if catalog, ok := t.catalogs[code]; ok {
			order = append(order, catalog)
		}
	}
	if locale != t.defaultCode {
		if catalog, ok := t.catalogs[t.defaultCode]; ok {
			order = append(order, catalog)
		}
	}
	return order
}
