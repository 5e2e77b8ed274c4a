package handfile

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lox/starscribe/internal/hand"
)

const sampleDoc = `
[[hand]]
id = 4321
game = "holdem"
limit = "no limit"
table = "Halley"
table_size = 2
dealer_seat = 1
small_blind = 1.0
big_blind = 2.0
format = "cash"
currency = "USD"
currency_symbol = "$"
timestamp = 2015-07-14T09:30:00Z
hero = "hero"

[[hand.seat]]
seat = 1
name = "hero"
chips = 200.0
cards = ["Ah", "Kh"]

[[hand.seat]]
seat = 2
name = "villain"
chips = 200.0
cards = ["Jd", "Js"]

[[hand.post]]
name = "hero"
type = "small blind"
chips = 1.0

[[hand.post]]
name = "villain"
type = "bb"
chips = 2.0

[hand.board]
flop = ["2c", "7d", "Jh"]
turn = ["Qs"]

[[hand.action]]
street = "preflop"
name = "hero"
type = "raise"
chips = 5.0
to_chips = 6.0

[[hand.action]]
street = "preflop"
name = "villain"
type = "call"
chips = 4.0

[[hand.action]]
street = "flop"
name = "villain"
type = "check"

[[hand.showdown]]
name = "villain"
type = "show"

[hand.showdown.ranking]
rank = "trips"
high = "J"
kickers = ["A", "Q"]

[hand.pot]
total = 12.0
rake = 0.5
`

func TestDecode(t *testing.T) {
	hands, err := Decode([]byte(sampleDoc))
	require.NoError(t, err)
	require.Len(t, hands, 1)

	h := hands[0]
	require.Equal(t, uint64(4321), h.ID)
	require.Equal(t, hand.Holdem, h.Game)
	require.Equal(t, hand.NoLimit, h.Limit)
	require.Equal(t, hand.TwoMax, h.TableSize)
	require.Equal(t, hand.CashGame, h.Format)
	require.Equal(t, hand.Currency{Symbol: "$", Code: "USD"}, h.Currency)
	require.Equal(t, time.Date(2015, time.July, 14, 9, 30, 0, 0, time.UTC), h.Timestamp.UTC())
	require.Equal(t, "hero", h.HeroName)

	require.Len(t, h.Seats, 2)
	require.Equal(t, "Ah", h.Seats[0].Cards[0].String())

	require.Len(t, h.Posts, 2)
	require.Equal(t, hand.SmallBlindPost, h.Posts[0].Type)
	require.Equal(t, hand.BigBlindPost, h.Posts[1].Type)

	require.Len(t, h.Community[hand.Flop], 3)
	require.Len(t, h.Community[hand.Turn], 1)
	require.Empty(t, h.Community[hand.River])

	require.Len(t, h.Actions[hand.Preflop], 2)
	require.Equal(t, hand.Raise, h.Actions[hand.Preflop][0].Type)
	require.Equal(t, 6.0, h.Actions[hand.Preflop][0].ToChips)
	require.Len(t, h.Actions[hand.Flop], 1)

	require.Len(t, h.Showdown, 1)
	require.NotNil(t, h.Showdown[0].Ranking)
	require.Equal(t, hand.Trips, h.Showdown[0].Ranking.Rank)
	require.Len(t, h.Showdown[0].Ranking.Kickers, 2)

	require.NotNil(t, h.Pot)
	require.Equal(t, 12.0, h.Pot.Total)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"not toml", "{{{{"},
		{"bad format", "[[hand]]\nformat = \"sit-n-go\"\n"},
		{"bad card", "[[hand]]\nformat = \"cash\"\n[[hand.seat]]\nseat = 1\ncards = [\"Zz\"]\n"},
		{"bad action type", "[[hand]]\nformat = \"cash\"\n[[hand.action]]\ntype = \"jumps\"\n"},
		{"bad street", "[[hand]]\nformat = \"cash\"\n[[hand.action]]\nstreet = \"fourth\"\ntype = \"check\"\n"},
		{"bad rank", "[[hand]]\nformat = \"cash\"\n[[hand.showdown]]\ntype = \"show\"\n[hand.showdown.ranking]\nrank = \"big\"\nhigh = \"A\"\n"},
	}

	for _, tt := range tests {
		_, err := Decode([]byte(tt.doc))
		require.Error(t, err, tt.name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hand.toml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0644))

	hands, err := Load(path)
	require.NoError(t, err)
	require.Len(t, hands, 1)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}
