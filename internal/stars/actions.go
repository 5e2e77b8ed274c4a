package stars

import (
	"fmt"
	"strings"

	"github.com/lox/starscribe/internal/hand"
)

// writeAction appends one action line. Action kinds outside the betting
// vocabulary (showdown bookkeeping, site-internal markers) produce no
// output; the model legitimately carries kinds this report ignores.
func writeAction(b *strings.Builder, a hand.Action, cf ChipFormatter) {
	switch {
	case a.Type == hand.Return:
		fmt.Fprintf(b, "Uncalled bet (%s) returned to %s\n", cf.Format(a.Chips), a.Name)

	case a.Type == hand.Result:
		fmt.Fprintf(b, "%s: collects %s\n", a.Name, cf.Format(a.Chips))

	case a.Type == hand.Fold || a.Type == hand.Check:
		fmt.Fprintf(b, "%s: %s\n", a.Name, a.Type.Verb())

	case a.Type.CarriesChips():
		fmt.Fprintf(b, "%s: %s %s", a.Name, a.Type.Verb(), cf.Format(a.Chips))
		if a.Type.CarriesToAmount() && a.ToChips > 0 {
			fmt.Fprintf(b, " to %s", cf.Format(a.ToChips))
		}
		if a.AllIn {
			b.WriteString(" and is all-in")
		}
		b.WriteByte('\n')
	}
}

// writeActions appends the action block for one street.
func writeActions(b *strings.Builder, actions []hand.Action, cf ChipFormatter) {
	for _, a := range actions {
		writeAction(b, a, cf)
	}
}
