package stars

import (
	"strings"
	"testing"
	"time"

	"github.com/lox/starscribe/internal/deck"
	"github.com/lox/starscribe/internal/hand"
)

func mustCards(t *testing.T, specs ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(specs)
	if err != nil {
		t.Fatalf("parse cards: %v", err)
	}
	return cards
}

// testHand is a minimal 2-seat cash hand that folds out preflop.
func testHand(t *testing.T) *hand.Hand {
	t.Helper()
	return &hand.Hand{
		ID:         4321,
		Game:       hand.Holdem,
		Limit:      hand.NoLimit,
		TableID:    "Halley",
		TableSize:  hand.TwoMax,
		DealerSeat: 1,
		SmallBlind: 1,
		BigBlind:   2,
		Format:     hand.CashGame,
		Currency:   usd,
		Timestamp:  time.Date(2015, time.July, 14, 9, 30, 0, 0, time.UTC),
		HeroName:   "hero",
		Seats: []hand.Player{
			{Seat: 1, Name: "hero", Chips: 200, Cards: mustCards(t, "Ah", "Kh")},
			{Seat: 2, Name: "villain", Chips: 200},
		},
		Posts: []hand.Post{
			{Name: "hero", Type: hand.SmallBlindPost, Chips: 1},
			{Name: "villain", Type: hand.BigBlindPost, Chips: 2},
		},
		Community: map[hand.Street][]deck.Card{},
		Actions: map[hand.Street][]hand.Action{
			hand.Preflop: {
				{Name: "hero", Type: hand.Fold},
				{Name: "villain", Type: hand.Result, Chips: 3},
			},
		},
	}
}

func TestDeriveDealerSeat(t *testing.T) {
	tests := []struct {
		name       string
		dealerSeat int
		seats      []int
		want       int
	}{
		{"explicit seat wins", 5, []int{1, 2, 3}, 5},
		{"first gap", 0, []int{1, 2, 4}, 3},
		{"gap at front", 0, []int{2, 3}, 1},
		{"no gap gives one past last", 0, []int{1, 2, 3}, 4},
		{"no seats", 0, nil, 1},
	}

	// The gap scan is a fallback heuristic for incomplete upstream data,
	// not a poker-rules computation.
	for _, tt := range tests {
		h := &hand.Hand{DealerSeat: tt.dealerSeat}
		for _, s := range tt.seats {
			h.Seats = append(h.Seats, hand.Player{Seat: s})
		}
		if got := DeriveDealerSeat(h); got != tt.want {
			t.Fatalf("%s: got %d want %d", tt.name, got, tt.want)
		}
	}
}

func TestStreetSectionsGateOnFlop(t *testing.T) {
	h := testHand(t)
	// Turn and river cards without a flop: no street sections at all.
	h.Community[hand.Turn] = mustCards(t, "Qs")
	h.Community[hand.River] = mustCards(t, "3d")

	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(h)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, section := range []string{"*** FLOP ***", "*** TURN ***", "*** RIVER ***"} {
		if strings.Contains(out, section) {
			t.Fatalf("output contains %s without flop cards:\n%s", section, out)
		}
	}
}

func TestRiverOmittedWithoutFlop(t *testing.T) {
	h := testHand(t)
	// A lone river with no earlier streets is upstream garbage; the
	// report must not carry it.
	h.Community[hand.River] = mustCards(t, "3d")

	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(h)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(out, "*** RIVER ***") {
		t.Fatalf("river rendered without flop cards:\n%s", out)
	}
}

func TestStreetSectionsCumulativeBoard(t *testing.T) {
	h := testHand(t)
	h.Community[hand.Flop] = mustCards(t, "2c", "7d", "Jh")
	h.Community[hand.Turn] = mustCards(t, "Qs")
	h.Community[hand.River] = mustCards(t, "3d")
	h.Actions[hand.Preflop] = []hand.Action{
		{Name: "hero", Type: hand.Call, Chips: 1},
		{Name: "villain", Type: hand.Check},
	}
	h.Actions[hand.Flop] = []hand.Action{
		{Name: "villain", Type: hand.Check},
		{Name: "hero", Type: hand.Bet, Chips: 2},
		{Name: "villain", Type: hand.Call, Chips: 2},
	}

	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(h)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, line := range []string{
		"*** FLOP *** [2c 7d Jh]\n",
		"*** TURN *** [2c 7d Jh] [Qs]\n",
		"*** RIVER *** [2c 7d Jh Qs] [3d]\n",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("output missing %q:\n%s", line, out)
		}
	}

	// Flop actions follow the flop line.
	flopIdx := strings.Index(out, "*** FLOP ***")
	turnIdx := strings.Index(out, "*** TURN ***")
	betIdx := strings.Index(out, "hero: bets $2.00\n")
	if betIdx < flopIdx || betIdx > turnIdx {
		t.Fatalf("flop action not inside flop section:\n%s", out)
	}
}

func TestTurnOmittedWithoutTurnCards(t *testing.T) {
	h := testHand(t)
	h.Community[hand.Flop] = mustCards(t, "2c", "7d", "Jh")

	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(h)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(out, "*** FLOP ***") {
		t.Fatalf("output missing flop section:\n%s", out)
	}
	if strings.Contains(out, "*** TURN ***") || strings.Contains(out, "*** RIVER ***") {
		t.Fatalf("turn/river rendered without cards:\n%s", out)
	}
}

func TestShowdownSection(t *testing.T) {
	h := testHand(t)
	h.Seats[1].Cards = mustCards(t, "Jd", "Js")
	h.Community[hand.Flop] = mustCards(t, "2c", "7d", "Jh")
	h.Community[hand.Turn] = mustCards(t, "Qs")
	h.Community[hand.River] = mustCards(t, "3d")
	h.Showdown = []hand.Action{
		{Name: "villain", Type: hand.Show, Ranking: &hand.Ranking{
			Rank: hand.Trips, High: deck.Jack,
		}},
		{Name: "hero", Type: hand.Muck},
		{Name: "villain", Type: hand.Result, Chips: 12},
	}

	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(h)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	for _, line := range []string{
		"*** SHOW DOWN ***\n",
		"villain: shows [Jd Js] (Three of a Kind, Jacks)\n",
		"hero: mucks hand\n",
		"villain collected $12.00 from pot\n",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("output missing %q:\n%s", line, out)
		}
	}
}

func TestShowdownOmittedWithoutActions(t *testing.T) {
	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(testHand(t))
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if strings.Contains(out, "*** SHOW DOWN ***") {
		t.Fatalf("showdown rendered without showdown actions:\n%s", out)
	}
}

func TestHeaderOmitsCurrencyCodeForPlayMoney(t *testing.T) {
	h := testHand(t)
	h.PlayMoney = true

	r := NewRenderer(DefaultClock(), Options{})
	out, err := r.Render(h)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if !strings.Contains(out, "(1.00/2.00)") {
		t.Fatalf("play money stakes not bare:\n%s", out)
	}
	if strings.Contains(out, "USD") {
		t.Fatalf("play money header carries currency code:\n%s", out)
	}
}
