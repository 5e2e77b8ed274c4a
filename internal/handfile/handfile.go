// Package handfile loads hand models from TOML documents so hands
// captured by other tooling can be rendered from the command line. One
// file holds one or more [[hand]] tables.
package handfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lox/starscribe/internal/deck"
	"github.com/lox/starscribe/internal/hand"
)

type document struct {
	Hands []handDoc `toml:"hand"`
}

type handDoc struct {
	ID         uint64    `toml:"id"`
	Game       string    `toml:"game"`
	Limit      string    `toml:"limit"`
	Table      string    `toml:"table"`
	TableSize  int       `toml:"table_size"`
	DealerSeat int       `toml:"dealer_seat"`
	SmallBlind float64   `toml:"small_blind"`
	BigBlind   float64   `toml:"big_blind"`
	Format     string    `toml:"format"`
	PlayMoney  bool      `toml:"play_money"`
	Currency   string    `toml:"currency"`
	Symbol     string    `toml:"currency_symbol"`
	Timestamp  time.Time `toml:"timestamp"`
	Hero       string    `toml:"hero"`

	Seats    []seatDoc   `toml:"seat"`
	Posts    []postDoc   `toml:"post"`
	Board    boardDoc    `toml:"board"`
	Actions  []actionDoc `toml:"action"`
	Showdown []actionDoc `toml:"showdown"`
	Pot      *potDoc     `toml:"pot"`
}

type seatDoc struct {
	Seat  int      `toml:"seat"`
	Name  string   `toml:"name"`
	Chips float64  `toml:"chips"`
	Cards []string `toml:"cards"`
}

type postDoc struct {
	Name  string  `toml:"name"`
	Type  string  `toml:"type"`
	Chips float64 `toml:"chips"`
}

type boardDoc struct {
	Flop  []string `toml:"flop"`
	Turn  []string `toml:"turn"`
	River []string `toml:"river"`
}

type actionDoc struct {
	Street  string      `toml:"street"`
	Name    string      `toml:"name"`
	Type    string      `toml:"type"`
	Chips   float64     `toml:"chips"`
	ToChips float64     `toml:"to_chips"`
	AllIn   bool        `toml:"all_in"`
	Ranking *rankingDoc `toml:"ranking"`
}

type rankingDoc struct {
	Rank    string   `toml:"rank"`
	High    string   `toml:"high"`
	Low     string   `toml:"low"`
	Kickers []string `toml:"kickers"`
}

type potDoc struct {
	Total float64   `toml:"total"`
	Rake  float64   `toml:"rake"`
	Notes []noteDoc `toml:"note"`
}

type noteDoc struct {
	Seat int    `toml:"seat"`
	Name string `toml:"name"`
	Note string `toml:"note"`
}

// Load reads every hand in the given TOML file.
func Load(path string) ([]hand.Hand, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses TOML bytes into hand models.
func Decode(data []byte) ([]hand.Hand, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("handfile: %w", err)
	}
	if len(doc.Hands) == 0 {
		return nil, fmt.Errorf("handfile: no [[hand]] tables found")
	}

	hands := make([]hand.Hand, 0, len(doc.Hands))
	for i, hd := range doc.Hands {
		h, err := hd.toHand()
		if err != nil {
			return nil, fmt.Errorf("handfile: hand %d: %w", i+1, err)
		}
		hands = append(hands, h)
	}
	return hands, nil
}

func (d handDoc) toHand() (hand.Hand, error) {
	game, err := parseGame(d.Game)
	if err != nil {
		return hand.Hand{}, err
	}
	limit, err := parseLimit(d.Limit)
	if err != nil {
		return hand.Hand{}, err
	}
	format, err := parseFormat(d.Format)
	if err != nil {
		return hand.Hand{}, err
	}

	h := hand.Hand{
		ID:         d.ID,
		Game:       game,
		Limit:      limit,
		TableID:    d.Table,
		TableSize:  hand.TableSize(d.TableSize),
		DealerSeat: d.DealerSeat,
		SmallBlind: d.SmallBlind,
		BigBlind:   d.BigBlind,
		Format:     format,
		PlayMoney:  d.PlayMoney,
		Currency:   hand.Currency{Symbol: d.Symbol, Code: d.Currency},
		Timestamp:  d.Timestamp,
		HeroName:   d.Hero,
		Community:  map[hand.Street][]deck.Card{},
		Actions:    map[hand.Street][]hand.Action{},
	}

	for _, s := range d.Seats {
		cards, err := deck.ParseCards(s.Cards)
		if err != nil {
			return hand.Hand{}, fmt.Errorf("seat %d: %w", s.Seat, err)
		}
		h.Seats = append(h.Seats, hand.Player{
			Seat:  s.Seat,
			Name:  s.Name,
			Chips: s.Chips,
			Cards: cards,
		})
	}

	for _, p := range d.Posts {
		pt, err := parsePostType(p.Type)
		if err != nil {
			return hand.Hand{}, err
		}
		h.Posts = append(h.Posts, hand.Post{Name: p.Name, Type: pt, Chips: p.Chips})
	}

	for street, cards := range map[hand.Street][]string{
		hand.Flop:  d.Board.Flop,
		hand.Turn:  d.Board.Turn,
		hand.River: d.Board.River,
	} {
		parsed, err := deck.ParseCards(cards)
		if err != nil {
			return hand.Hand{}, fmt.Errorf("%s board: %w", street, err)
		}
		if len(parsed) > 0 {
			h.Community[street] = parsed
		}
	}

	for _, a := range d.Actions {
		street, err := parseStreet(a.Street)
		if err != nil {
			return hand.Hand{}, err
		}
		act, err := a.toAction()
		if err != nil {
			return hand.Hand{}, err
		}
		h.Actions[street] = append(h.Actions[street], act)
	}

	for _, a := range d.Showdown {
		act, err := a.toAction()
		if err != nil {
			return hand.Hand{}, err
		}
		h.Showdown = append(h.Showdown, act)
	}

	if d.Pot != nil {
		pot := &hand.PotSummary{Total: d.Pot.Total, Rake: d.Pot.Rake}
		for _, n := range d.Pot.Notes {
			pot.Notes = append(pot.Notes, hand.SeatNote{Seat: n.Seat, Name: n.Name, Note: n.Note})
		}
		h.Pot = pot
	}

	return h, nil
}

func (a actionDoc) toAction() (hand.Action, error) {
	at, err := parseActionType(a.Type)
	if err != nil {
		return hand.Action{}, err
	}

	act := hand.Action{
		Name:    a.Name,
		Type:    at,
		Chips:   a.Chips,
		ToChips: a.ToChips,
		AllIn:   a.AllIn,
	}

	if a.Ranking != nil {
		r, err := a.Ranking.toRanking()
		if err != nil {
			return hand.Action{}, err
		}
		act.Ranking = &r
	}

	return act, nil
}

func (d rankingDoc) toRanking() (hand.Ranking, error) {
	rank, err := parseHandRank(d.Rank)
	if err != nil {
		return hand.Ranking{}, err
	}

	high, err := deck.ParseRank(d.High)
	if err != nil {
		return hand.Ranking{}, fmt.Errorf("ranking high: %w", err)
	}

	r := hand.Ranking{Rank: rank, High: high}

	if d.Low != "" {
		low, err := deck.ParseRank(d.Low)
		if err != nil {
			return hand.Ranking{}, fmt.Errorf("ranking low: %w", err)
		}
		r.Low = low
	}

	for _, k := range d.Kickers {
		kr, err := deck.ParseRank(k)
		if err != nil {
			return hand.Ranking{}, fmt.Errorf("ranking kicker: %w", err)
		}
		r.Kickers = append(r.Kickers, kr)
	}

	return r, nil
}
