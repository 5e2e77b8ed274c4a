package stars

import "errors"

// Rendering is all-or-nothing: any of these aborts the whole render so a
// downstream parser never sees a partially-formed report.
var (
	// ErrInvalidFormat means the hand's game format is not a recognized
	// value. Checked before any chip amount is formatted.
	ErrInvalidFormat = errors.New("stars: invalid game format")

	// ErrMissingHero means the hand names no seated hero player, so the
	// hole-cards section cannot be produced.
	ErrMissingHero = errors.New("stars: hero player not seated")

	// ErrMissingField means the upstream model violated its contract,
	// e.g. a two-pair ranking without a second rank.
	ErrMissingField = errors.New("stars: required field missing")
)
