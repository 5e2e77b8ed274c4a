package stars

import (
	"fmt"
	"strings"

	"github.com/lox/starscribe/internal/deck"
	"github.com/lox/starscribe/internal/hand"
)

// writeSummary appends the SUMMARY section when Options.IncludeSummary is
// set. It consumes only the hand's PotSummary aggregate; with the flag off
// (the default) the section is absent and the aggregate is never touched.
func (r *Renderer) writeSummary(b *strings.Builder, h *hand.Hand, cf ChipFormatter) error {
	if !r.opts.IncludeSummary {
		return nil
	}
	if h.Pot == nil {
		return fmt.Errorf("%w: pot summary requested but not supplied", ErrMissingField)
	}

	b.WriteString("*** SUMMARY ***\n")
	fmt.Fprintf(b, "Total pot %s | Rake %s\n", cf.Format(h.Pot.Total), cf.Format(h.Pot.Rake))

	if board := h.Board(hand.River); len(board) > 0 {
		fmt.Fprintf(b, "Board %s\n", deck.FormatCards(board))
	}

	for _, n := range h.Pot.Notes {
		fmt.Fprintf(b, "Seat %d: %s %s\n", n.Seat, n.Name, n.Note)
	}

	return nil
}
