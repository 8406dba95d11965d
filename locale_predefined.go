package roadlocale

// LocaleEnUS returns a Locale configured for US English (en-US).
func LocaleEnUS() *Locale {
	return NewLocale("en-US", "en",
		WithRegion("US"),
		WithName("English (United States)"),
		WithDateFormat("01/02/2006"),
		WithTimeFormat("3:04 PM"),
		WithDateTimeFormat("01/02/2006 3:04 PM"),
	)
}

// LocaleEnGB returns a Locale configured for British English (en-GB).
func LocaleEnGB() *Locale {
	return NewLocale("en-GB", "en",
		WithRegion("GB"),
		WithName("English (United Kingdom)"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
		WithCurrencySymbol("£"),
	)
}

// LocaleDeDE returns a Locale configured for German (de-DE).
func LocaleDeDE() *Locale {
	return NewLocale("de-DE", "de",
		WithRegion("DE"),
		WithName("Deutsch"),
		WithDateFormat("02.01.2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02.01.2006 15:04"),
		WithDecimalSeparator(","),
		WithThousandsSeparator("."),
		WithCurrencySymbol("€"),
		WithCurrencyFormat("{amount} {symbol}"),
	)
}

// LocaleFrFR returns a Locale configured for French (fr-FR).
func LocaleFrFR() *Locale {
	return NewLocale("fr-FR", "fr",
		WithRegion("FR"),
		WithName("Français"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
		WithDecimalSeparator(","),
		WithThousandsSeparator(" "),
		WithCurrencySymbol("€"),
		WithCurrencyFormat("{amount} {symbol}"),
	)
}

// LocaleEsES returns a Locale configured for Spanish (es-ES).
func LocaleEsES() *Locale {
	return NewLocale("es-ES", "es",
		WithRegion("ES"),
		WithName("Español"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
		WithDecimalSeparator(","),
		WithThousandsSeparator("."),
		WithCurrencySymbol("€"),
		WithCurrencyFormat("{amount} {symbol}"),
	)
}

// LocalePtBR returns a Locale configured for Brazilian Portuguese (pt-BR).
func LocalePtBR() *Locale {
	return NewLocale("pt-BR", "pt",
		WithRegion("BR"),
		WithName("Português (Brasil)"),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02/01/2006 15:04"),
		WithDecimalSeparator(","),
		WithThousandsSeparator("."),
		WithCurrencySymbol("R$"),
	)
}

// LocalePlPL returns a Locale configured for Polish (pl-PL).
func LocalePlPL() *Locale {
	return NewLocale("pl-PL", "pl",
		WithRegion("PL"),
		WithName("Polski"),
		WithDateFormat("02.01.2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02.01.2006 15:04"),
		WithDecimalSeparator(","),
		WithThousandsSeparator(" "),
		WithCurrencySymbol("zł"),
		WithCurrencyFormat("{amount} {symbol}"),
	)
}

// LocaleRuRU returns a Locale configured for Russian (ru-RU).
func LocaleRuRU() *Locale {
	return NewLocale("ru-RU", "ru",
		WithRegion("RU"),
		WithName("Русский"),
		WithDateFormat("02.01.2006"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("02.01.2006 15:04"),
		WithDecimalSeparator(","),
		WithThousandsSeparator(" "),
		WithCurrencySymbol("₽"),
		WithCurrencyFormat("{amount} {symbol}"),
	)
}

// LocaleArSA returns a Locale configured for Arabic (ar-SA).
func LocaleArSA() *Locale {
	return NewLocale("ar-SA", "ar",
		WithRegion("SA"),
		WithName("العربية"),
		WithDirection(DirectionRTL),
		WithDateFormat("02/01/2006"),
		WithTimeFormat("3:04 PM"),
		WithDateTimeFormat("02/01/2006 3:04 PM"),
		WithCurrencySymbol("SAR"),
		WithCurrencyFormat("{amount} {symbol}"),
	)
}

// LocaleJaJP returns a Locale configured for Japanese (ja-JP).
func LocaleJaJP() *Locale {
	return NewLocale("ja-JP", "ja",
		WithRegion("JP"),
		WithName("日本語"),
		WithDateFormat("2006/01/02"),
		WithTimeFormat("15:04"),
		WithDateTimeFormat("2006/01/02 15:04"),
		WithCurrencySymbol("¥"),
	)
}
