// Package roadlocale resolves translation keys to locale-specific text,
// with pluralization, placeholder interpolation, and locale-aware number,
// date, and currency formatting.
//
// A Translator owns a registry of locales. Each registered locale has its
// own message catalog and formatter; lookups fall back through a
// configurable per-locale chain and finally the default locale. A key that
// resolves to nothing comes back unchanged, so rendering never fails.
//
// # Basic Usage
//
//	translator, err := roadlocale.New(
//		roadlocale.WithDefaultLocale(roadlocale.LocaleEnUS()),
//		roadlocale.WithLocales(roadlocale.LocaleEsES()),
//		roadlocale.WithMessages("en-US", map[string]string{
//			"welcome": "Welcome, {name}!",
//		}),
//		roadlocale.WithMessages("es-ES", map[string]string{
//			"welcome": "¡Bienvenido, {name}!",
//		}),
//	)
//
//	translator.T("welcome", roadlocale.M{"name": "Alice"})
//	// Output: "Welcome, Alice!"
//
//	translator.SetLocale("es-ES")
//	translator.T("welcome", roadlocale.M{"name": "Alice"})
//	// Output: "¡Bienvenido, Alice!"
//
// # Pluralization
//
// Messages carry alternate texts per CLDR plural category. TranslatePlural
// picks the category for the locale's language and binds the count to the
// {count} placeholder:
//
//	catalog, _ := translator.Catalog("en-US")
//	catalog.Add(roadlocale.Message{
//		Key:   "items",
//		Value: "You have {count} item",
//		Plural: map[roadlocale.PluralCategory]string{
//			roadlocale.PluralOne:   "You have {count} item",
//			roadlocale.PluralOther: "You have {count} items",
//		},
//	})
//
//	translator.Tn("items", 5)
//	// Output: "You have 5 items"
//
// # Placeholders and Format Directives
//
// Templates use {name} placeholders, optionally with an inline format spec:
// {total:currency}, {when:date}, {ratio:decimal:3}, {n:number}. Values
// missing from the map leave the placeholder in the output verbatim.
//
// # Loading Message Files
//
// LoadDir bulk-loads <code>.json, <code>.yaml, or <code>.toml files from an
// fs.FS, auto-registering unknown locales:
//
//	//go:embed locales
//	var localeFS embed.FS
//
//	subFS, _ := fs.Sub(localeFS, "locales")
//	n, err := roadlocale.LoadDir(translator, subFS)
//
// A file value is either a plain string or an object with "value",
// "plural", "context", and "description" fields.
package roadlocale
