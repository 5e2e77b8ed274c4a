// Package stars renders a resolved hand model as PokerStars hand-history
// text. The output is consumed by third-party trackers that require exact
// section ordering, punctuation and numeric formatting, so every line here
// is byte-exact by contract.
//
// Rendering is a pure function of the hand model: no I/O, no shared state,
// safe for concurrent use. Any contract violation by the model (invalid
// format, missing hero, malformed ranking) aborts the whole render; a
// partially-formed report is worse than none for downstream parsers.
package stars

import (
	"strings"

	"github.com/lox/starscribe/internal/hand"
)

// Options toggles optional report sections.
type Options struct {
	// IncludeSummary appends the trailing SUMMARY section fed from the
	// hand's PotSummary aggregate. Off by default; the nine core sections
	// are the stable contract.
	IncludeSummary bool
}

// Renderer turns hand models into report text. The zero value is not
// usable; construct with NewRenderer.
type Renderer struct {
	clock Clock
	opts  Options
}

// NewRenderer creates a renderer with the given house clock and options.
func NewRenderer(clock Clock, opts Options) *Renderer {
	return &Renderer{clock: clock, opts: opts}
}

// Render produces the complete report for one hand: header, table, seats,
// posts, hole cards, flop, turn, river, showdown, optional summary, and a
// single trailing blank line.
func (r *Renderer) Render(h *hand.Hand) (string, error) {
	// Validate the format before anything renders a chip amount.
	cf, err := NewChipFormatter(h)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	r.writeHeader(&b, h, cf)
	r.writeTable(&b, h)
	r.writeSeats(&b, h, cf)
	r.writePosts(&b, h, cf)
	if err := r.writeHoleCards(&b, h, cf); err != nil {
		return "", err
	}
	r.writeFlop(&b, h, cf)
	r.writeTurn(&b, h, cf)
	r.writeRiver(&b, h, cf)
	if err := r.writeShowdown(&b, h, cf); err != nil {
		return "", err
	}
	if err := r.writeSummary(&b, h, cf); err != nil {
		return "", err
	}

	b.WriteByte('\n')
	return b.String(), nil
}
