package handfile

import (
	"fmt"
	"strings"

	"github.com/lox/starscribe/internal/hand"
)

func parseGame(s string) (hand.Game, error) {
	switch normalize(s) {
	case "", "holdem":
		return hand.Holdem, nil
	default:
		return 0, fmt.Errorf("unknown game %q", s)
	}
}

func parseLimit(s string) (hand.Limit, error) {
	switch normalize(s) {
	case "", "nolimit", "nl":
		return hand.NoLimit, nil
	default:
		return 0, fmt.Errorf("unknown limit %q", s)
	}
}

func parseFormat(s string) (hand.Format, error) {
	switch normalize(s) {
	case "cash", "cashgame":
		return hand.CashGame, nil
	case "tournament", "tourney":
		return hand.Tournament, nil
	default:
		return 0, fmt.Errorf("unknown format %q", s)
	}
}

func parsePostType(s string) (hand.PostType, error) {
	switch normalize(s) {
	case "sb", "smallblind":
		return hand.SmallBlindPost, nil
	case "bb", "bigblind":
		return hand.BigBlindPost, nil
	default:
		return 0, fmt.Errorf("unknown post type %q", s)
	}
}

func parseStreet(s string) (hand.Street, error) {
	switch normalize(s) {
	case "", "preflop":
		return hand.Preflop, nil
	case "flop":
		return hand.Flop, nil
	case "turn":
		return hand.Turn, nil
	case "river":
		return hand.River, nil
	default:
		return 0, fmt.Errorf("unknown street %q", s)
	}
}

func parseActionType(s string) (hand.ActionType, error) {
	switch normalize(s) {
	case "fold", "folds":
		return hand.Fold, nil
	case "check", "checks":
		return hand.Check, nil
	case "call", "calls":
		return hand.Call, nil
	case "bet", "bets":
		return hand.Bet, nil
	case "raise", "raises":
		return hand.Raise, nil
	case "return":
		return hand.Return, nil
	case "result", "collect", "collects":
		return hand.Result, nil
	case "show", "shows":
		return hand.Show, nil
	case "muck", "mucks":
		return hand.Muck, nil
	default:
		return 0, fmt.Errorf("unknown action type %q", s)
	}
}

func parseHandRank(s string) (hand.HandRank, error) {
	switch normalize(s) {
	case "highcard":
		return hand.HighCard, nil
	case "pair":
		return hand.Pair, nil
	case "twopair":
		return hand.TwoPair, nil
	case "trips", "threeofakind":
		return hand.Trips, nil
	case "straight":
		return hand.Straight, nil
	case "flush":
		return hand.Flush, nil
	case "fullhouse":
		return hand.FullHouse, nil
	case "quads", "fourofakind":
		return hand.Quads, nil
	case "straightflush":
		return hand.StraightFlush, nil
	default:
		return 0, fmt.Errorf("unknown hand rank %q", s)
	}
}

// normalize lowercases and strips the separators people write in hand
// files ("two pair", "two-pair", "two_pair" all match "twopair").
func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
