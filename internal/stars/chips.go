package stars

import (
	"fmt"

	"github.com/lox/starscribe/internal/hand"
)

// FormatChips renders a chip amount for the given format. Cash-game
// amounts get two decimals and a currency symbol prefix (unless play
// money); tournament amounts render as bare integers.
func FormatChips(amount float64, format hand.Format, playMoney bool, currency hand.Currency) (string, error) {
	switch format {
	case hand.CashGame:
		if playMoney {
			return fmt.Sprintf("%.2f", amount), nil
		}
		return fmt.Sprintf("%s%.2f", currency.Symbol, amount), nil
	case hand.Tournament:
		return fmt.Sprintf("%d", int64(amount)), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
}

// ChipFormatter is FormatChips bound to one hand's format, play-money
// flag and currency. The constructor validates the format once so every
// later call in the same render is infallible.
type ChipFormatter struct {
	format    hand.Format
	playMoney bool
	currency  hand.Currency
}

// NewChipFormatter builds a formatter for the given hand, failing on an
// unrecognized game format.
func NewChipFormatter(h *hand.Hand) (ChipFormatter, error) {
	if !h.Format.Valid() {
		return ChipFormatter{}, fmt.Errorf("%w: %s", ErrInvalidFormat, h.Format)
	}
	return ChipFormatter{
		format:    h.Format,
		playMoney: h.PlayMoney,
		currency:  h.Currency,
	}, nil
}

// Format renders an amount under the bound, already-validated format.
func (f ChipFormatter) Format(amount float64) string {
	out, err := FormatChips(amount, f.format, f.playMoney, f.currency)
	if err != nil {
		// Unreachable: the constructor rejected invalid formats.
		panic(err)
	}
	return out
}
