package roadlocale

import "strings"

// PluralCategory is one of the six CLDR plural categories.
// Not all languages use all categories.
type PluralCategory uint8

const (
	PluralZero PluralCategory = iota
	PluralOne
	PluralTwo
	PluralFew
	PluralMany
	PluralOther
)

// String returns the CLDR name of the category.
func (c PluralCategory) String() string {
	switch c {
	case PluralZero:
		return "zero"
	case PluralOne:
		return "one"
	case PluralTwo:
		return "two"
	case PluralFew:
		return "few"
	case PluralMany:
		return "many"
	default:
		return "other"
	}
}

// ParsePluralCategory maps a CLDR category name to its PluralCategory.
// Used at the import boundary where category names arrive as strings.
func ParsePluralCategory(name string) (PluralCategory, bool) {
	switch name {
	case "zero":
		return PluralZero, true
	case "one":
		return PluralOne, true
	case "two":
		return PluralTwo, true
	case "few":
		return PluralFew, true
	case "many":
		return PluralMany, true
	case "other":
		return PluralOther, true
	default:
		return PluralOther, false
	}
}

// Categorize returns the plural category for a count in the given language.
// The language tag is matched on its base language portion ("en-US" matches
// as "en", case-sensitively); unknown languages use the default one/other
// split. The sign of n is ignored. Categorize is pure and never fails.
func Categorize(languageTag string, n int) PluralCategory {
	if n < 0 {
		n = -n
	}

	switch baseLanguage(languageTag) {
	case "en", "de", "es", "it", "pt", "nl":
		return oneOtherPlural(n)
	case "fr":
		// French treats both 0 and 1 as singular.
		if n < 2 {
			return PluralOne
		}
		return PluralOther
	case "ru", "pl", "uk":
		return slavicPlural(n)
	case "ar":
		return arabicPlural(n)
	default:
		return oneOtherPlural(n)
	}
}

func oneOtherPlural(n int) PluralCategory {
	if n == 1 {
		return PluralOne
	}
	return PluralOther
}

// slavicPlural covers Russian, Polish and Ukrainian. It only ever yields
// one, few, or many: catalogs for these languages are written against this
// reduced set, so the unreachable categories stay unreachable.
func slavicPlural(n int) PluralCategory {
	mod10 := n % 10
	mod100 := n % 100

	if mod10 == 1 && mod100 != 11 {
		return PluralOne
	}
	if mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14) {
		return PluralFew
	}
	return PluralMany
}

// arabicPlural is the only rule that uses all six categories.
func arabicPlural(n int) PluralCategory {
	switch n {
	case 0:
		return PluralZero
	case 1:
		return PluralOne
	case 2:
		return PluralTwo
	}

	mod100 := n % 100
	if mod100 >= 3 && mod100 <= 10 {
		return PluralFew
	}
	if mod100 >= 11 && mod100 <= 99 {
		return PluralMany
	}
	return PluralOther
}

// baseLanguage strips the region from a language tag (e.g. "en-US" -> "en").
// Returns the input unchanged if there is no region.
func baseLanguage(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
