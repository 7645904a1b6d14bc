package horoscope

import "errors"

var (
	// ErrNotConfigured means no generation provider has credentials.
	// Fatal for the request; there is nothing the caller can retry.
	ErrNotConfigured = errors.New("horoscope: no generation provider configured")

	// ErrInvalidShape means the model output could not be parsed as JSON
	// or failed schema validation. Partial content is never accepted.
	ErrInvalidShape = errors.New("horoscope: invalid response shape")
)
