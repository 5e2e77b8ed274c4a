package stars

import (
	"fmt"
	"strings"

	"github.com/lox/starscribe/internal/deck"
	"github.com/lox/starscribe/internal/hand"
)

// FormatRanking composes the showdown hand description, e.g.
// "Full House, Kings full of Twos" or "Pair of Fours, kickers Ace, King".
// No trailing newline.
func FormatRanking(r hand.Ranking) (string, error) {
	if r.Rank.HasLowCard() && r.Low == 0 {
		return "", fmt.Errorf("%w: %s ranking has no second rank", ErrMissingField, r.Rank)
	}

	var b strings.Builder
	b.WriteString(r.Rank.String())

	hi := r.High.Name()
	switch r.Rank {
	case hand.FullHouse:
		fmt.Fprintf(&b, ", %ss full of %ss", hi, r.Low.Name())
	case hand.TwoPair:
		fmt.Fprintf(&b, ", %ss and %ss", hi, r.Low.Name())
	case hand.Quads, hand.Trips:
		fmt.Fprintf(&b, ", %ss", hi)
	case hand.Pair:
		fmt.Fprintf(&b, " of %ss", hi)
	default:
		fmt.Fprintf(&b, " %s", hi)
	}

	// Kickers de-duplicate on rank, first occurrence wins.
	seen := make(map[deck.Rank]bool, len(r.Kickers))
	kickers := make([]string, 0, len(r.Kickers))
	for _, k := range r.Kickers {
		if seen[k] {
			continue
		}
		seen[k] = true
		kickers = append(kickers, k.Name())
	}
	if len(kickers) > 0 {
		label := "kickers"
		if len(kickers) == 1 {
			label = "kicker"
		}
		fmt.Fprintf(&b, ", %s %s", label, strings.Join(kickers, ", "))
	}

	return b.String(), nil
}
