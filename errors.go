package roadlocale

import "errors"

var (
	ErrNilLocale           = errors.New("roadlocale: locale cannot be nil")
	ErrEmptyLocaleCode     = errors.New("roadlocale: locale code cannot be empty")
	ErrLocaleNotRegistered = errors.New("roadlocale: locale is not registered")
	ErrMalformedMessages   = errors.New("roadlocale: malformed message data")
)
