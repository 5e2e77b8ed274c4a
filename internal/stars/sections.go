package stars

import (
	"fmt"
	"strings"

	"github.com/lox/starscribe/internal/deck"
	"github.com/lox/starscribe/internal/hand"
)

// DeriveDealerSeat resolves the button seat. An explicit dealer seat wins;
// otherwise the first gap in the ascending seat numbers is taken, or one
// past the last seat when there is no gap. The gap scan is a heuristic for
// incomplete upstream data, not a poker rule.
func DeriveDealerSeat(h *hand.Hand) int {
	if h.DealerSeat > 0 {
		return h.DealerSeat
	}

	i := 1
	for _, p := range h.Seats {
		if p.Seat != i {
			return i
		}
		i++
	}
	return i
}

func (r *Renderer) writeHeader(b *strings.Builder, h *hand.Hand, cf ChipFormatter) {
	stakes := fmt.Sprintf("%s/%s", cf.Format(h.SmallBlind), cf.Format(h.BigBlind))
	if !h.PlayMoney {
		stakes += " " + h.Currency.Code
	}

	house, offset := r.clock.Format(h.Timestamp)
	fmt.Fprintf(b, "PokerStars Hand #%d:  %s %s (%s) - %s [%s]\n",
		h.ID, h.Game, h.Limit, stakes, house, offset)
}

func (r *Renderer) writeTable(b *strings.Builder, h *hand.Hand) {
	fmt.Fprintf(b, "Table '%s' %s Seat #%d is the button\n",
		h.TableID, h.TableSize, DeriveDealerSeat(h))
}

func (r *Renderer) writeSeats(b *strings.Builder, h *hand.Hand, cf ChipFormatter) {
	for _, p := range h.Seats {
		fmt.Fprintf(b, "Seat %d: %s (%s in chips)\n", p.Seat, p.Name, cf.Format(p.Chips))
	}
}

func (r *Renderer) writePosts(b *strings.Builder, h *hand.Hand, cf ChipFormatter) {
	for _, p := range h.Posts {
		fmt.Fprintf(b, "%s: posts %s %s\n", p.Name, p.Type.Label(), cf.Format(p.Chips))
	}
}

func (r *Renderer) writeHoleCards(b *strings.Builder, h *hand.Hand, cf ChipFormatter) error {
	hero, ok := h.Hero()
	if !ok {
		return fmt.Errorf("%w: %q", ErrMissingHero, h.HeroName)
	}

	b.WriteString("*** HOLE CARDS ***\n")
	fmt.Fprintf(b, "Dealt to %s %s\n", hero.Name, deck.FormatCards(hero.Cards))
	writeActions(b, h.StreetActions(hand.Preflop), cf)
	return nil
}

func (r *Renderer) writeFlop(b *strings.Builder, h *hand.Hand, cf ChipFormatter) {
	flop := h.CommunityCards(hand.Flop)
	if len(flop) == 0 {
		return
	}

	fmt.Fprintf(b, "*** FLOP *** %s\n", deck.FormatCards(flop))
	writeActions(b, h.StreetActions(hand.Flop), cf)
}

func (r *Renderer) writeTurn(b *strings.Builder, h *hand.Hand, cf ChipFormatter) {
	turn := h.CommunityCards(hand.Turn)
	flop := h.CommunityCards(hand.Flop)
	if len(turn) == 0 || len(flop) == 0 {
		return
	}

	fmt.Fprintf(b, "*** TURN *** %s %s\n", deck.FormatCards(flop), deck.FormatCards(turn))
	writeActions(b, h.StreetActions(hand.Turn), cf)
}

func (r *Renderer) writeRiver(b *strings.Builder, h *hand.Hand, cf ChipFormatter) {
	river := h.CommunityCards(hand.River)
	flop := h.CommunityCards(hand.Flop)
	if len(river) == 0 || len(flop) == 0 {
		return
	}

	fmt.Fprintf(b, "*** RIVER *** %s %s\n", deck.FormatCards(h.Board(hand.Turn)), deck.FormatCards(river))
	writeActions(b, h.StreetActions(hand.River), cf)
}

func (r *Renderer) writeShowdown(b *strings.Builder, h *hand.Hand, cf ChipFormatter) error {
	if len(h.Showdown) == 0 {
		return nil
	}

	b.WriteString("*** SHOW DOWN ***\n")

	for _, a := range h.Showdown {
		switch a.Type {
		case hand.Show:
			player, ok := h.Player(a.Name)
			if !ok {
				return fmt.Errorf("%w: showdown player %q not seated", ErrMissingField, a.Name)
			}
			if a.Ranking == nil {
				return fmt.Errorf("%w: show action for %q has no ranking", ErrMissingField, a.Name)
			}
			desc, err := FormatRanking(*a.Ranking)
			if err != nil {
				return err
			}
			fmt.Fprintf(b, "%s: shows %s (%s)\n", a.Name, deck.FormatCards(player.Cards), desc)

		case hand.Muck:
			fmt.Fprintf(b, "%s: mucks hand\n", a.Name)

		case hand.Result:
			fmt.Fprintf(b, "%s collected %s from pot\n", a.Name, cf.Format(a.Chips))
		}
	}

	return nil
}
