// Package hand defines the read-only model of a single resolved hold'em
// hand. The model is built upstream (game server, importer, test fixture)
// and consumed by the stars renderer; nothing in this package mutates it.
package hand

import (
	"time"

	"github.com/lox/starscribe/internal/deck"
)

// Currency is the money unit a cash hand was played in.
type Currency struct {
	Symbol string // e.g. "$"
	Code   string // e.g. "USD"
}

// Player is one occupied seat. Seats are 1-based and may have gaps.
type Player struct {
	Seat  int
	Name  string
	Chips float64
	Cards []deck.Card // hole cards, 0-2
}

// Post is a forced blind posting made before voluntary action.
type Post struct {
	Name  string
	Type  PostType
	Chips float64
}

// Ranking is a resolved hand strength: category, defining ranks and
// kickers. Low is meaningful only for two pair and full house.
type Ranking struct {
	Rank    HandRank
	High    deck.Rank
	Low     deck.Rank
	Kickers []deck.Rank
}

// Action is one recorded player action. ToChips is the raise-to total and
// is only meaningful for raises and completing calls. Ranking is set on
// Show actions when the upstream model resolved the shown hand.
type Action struct {
	Name    string
	Type    ActionType
	Chips   float64
	ToChips float64
	AllIn   bool
	Ranking *Ranking
}

// PotSummary is the separately-owned aggregate backing the optional
// SUMMARY section. It is nil on hands where the upstream model did not
// compute pot totals.
type PotSummary struct {
	Total float64
	Rake  float64
	Notes []SeatNote
}

// SeatNote is a pre-composed per-seat result phrase for the SUMMARY
// section, e.g. "folded before Flop".
type SeatNote struct {
	Seat int
	Name string
	Note string
}

// Hand is the full record of one played hand. All slices are in model
// order; Seats ascend by seat number.
type Hand struct {
	ID         uint64
	Game       Game
	Limit      Limit
	TableID    string
	TableSize  TableSize
	DealerSeat int // 0 means derive from seat gaps
	SmallBlind float64
	BigBlind   float64
	Format     Format
	PlayMoney  bool
	Currency   Currency
	Timestamp  time.Time
	HeroName   string

	Seats     []Player
	Posts     []Post
	Community map[Street][]deck.Card
	Actions   map[Street][]Action
	Showdown  []Action
	Pot       *PotSummary
}

// Player returns the seated player with the given name.
func (h *Hand) Player(name string) (*Player, bool) {
	for i := range h.Seats {
		if h.Seats[i].Name == name {
			return &h.Seats[i], true
		}
	}
	return nil, false
}

// Hero returns the player the hand was recorded for.
func (h *Hand) Hero() (*Player, bool) {
	return h.Player(h.HeroName)
}

// CommunityCards returns the cards revealed on exactly the given street.
func (h *Hand) CommunityCards(s Street) []deck.Card {
	return h.Community[s]
}

// Board returns the cumulative community cards visible through the given
// street.
func (h *Hand) Board(through Street) []deck.Card {
	var board []deck.Card
	for _, s := range []Street{Flop, Turn, River} {
		if s > through {
			break
		}
		board = append(board, h.Community[s]...)
	}
	return board
}

// StreetActions returns the action list for the given street.
func (h *Hand) StreetActions(s Street) []Action {
	return h.Actions[s]
}
