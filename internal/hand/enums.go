package hand

import "fmt"

// Game identifies the poker variant played.
type Game int

const (
	Holdem Game = iota
)

// String returns the display name used in the hand header.
func (g Game) String() string {
	switch g {
	case Holdem:
		return "Hold'em"
	default:
		return "Unknown"
	}
}

// Limit identifies the betting structure.
type Limit int

const (
	NoLimit Limit = iota
)

// String returns the display name used in the hand header.
func (l Limit) String() string {
	switch l {
	case NoLimit:
		return "No Limit"
	default:
		return "Unknown"
	}
}

// TableSize is the maximum number of seats at the table.
type TableSize int

const (
	TwoMax  TableSize = 2
	SixMax  TableSize = 6
	NineMax TableSize = 9
)

// String returns the table-size label used in the table line.
func (t TableSize) String() string {
	switch t {
	case TwoMax:
		return "2-max"
	case SixMax:
		return "6-max"
	case NineMax:
		return "9-max"
	default:
		return fmt.Sprintf("%d-max", int(t))
	}
}

// Format distinguishes cash games from tournaments. Chip formatting
// branches on it, so an unknown value is a hard error (ErrInvalidFormat
// in the stars package) rather than a silent fallback.
type Format int

const (
	CashGame Format = iota
	Tournament
)

// Valid reports whether f is one of the recognized formats.
func (f Format) Valid() bool {
	return f == CashGame || f == Tournament
}

func (f Format) String() string {
	switch f {
	case CashGame:
		return "cash"
	case Tournament:
		return "tournament"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// Street is a betting round tied to a community-card reveal stage.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return fmt.Sprintf("street(%d)", int(s))
	}
}

// PostType is the kind of forced bet posted before voluntary action.
type PostType int

const (
	SmallBlindPost PostType = iota
	BigBlindPost
)

// Label returns the phrase used in post lines ("posts small blind ...").
func (p PostType) Label() string {
	switch p {
	case SmallBlindPost:
		return "small blind"
	case BigBlindPost:
		return "big blind"
	default:
		return "blind"
	}
}

// ActionType is the kind of action a player took. The upstream model may
// carry kinds beyond this set; the renderer skips anything it does not
// recognize.
type ActionType int

const (
	Fold ActionType = iota
	Check
	Call
	Bet
	Raise
	Return // uncalled bet returned
	Result // pot collected
	Show   // showdown reveal
	Muck
)

// Verb returns the lowercase verb used in action lines, or "" for kinds
// that have no verb form (Return, Result, Show, Muck render specially).
func (a ActionType) Verb() string {
	switch a {
	case Fold:
		return "folds"
	case Check:
		return "checks"
	case Call:
		return "calls"
	case Bet:
		return "bets"
	case Raise:
		return "raises"
	default:
		return ""
	}
}

// CarriesChips reports whether the action line includes a chip amount.
func (a ActionType) CarriesChips() bool {
	switch a {
	case Call, Bet, Raise:
		return true
	default:
		return false
	}
}

// CarriesToAmount reports whether the action can carry a raise-to amount.
// Raises always do; calls only when they complete an all-in bet, which the
// model signals with a non-zero ToChips.
func (a ActionType) CarriesToAmount() bool {
	switch a {
	case Call, Raise:
		return true
	default:
		return false
	}
}

// HandRank is the category of a resolved five-card hand.
type HandRank int

const (
	HighCard HandRank = iota
	Pair
	TwoPair
	Trips
	Straight
	Flush
	FullHouse
	Quads
	StraightFlush
)

// String returns the base phrase used in showdown ranking descriptions.
func (r HandRank) String() string {
	switch r {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case Trips:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case Quads:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// HasLowCard reports whether the category pairs a secondary rank with the
// high rank (kings full of twos, aces and jacks).
func (r HandRank) HasLowCard() bool {
	return r == TwoPair || r == FullHouse
}
