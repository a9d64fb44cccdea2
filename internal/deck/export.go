package deck

import (
	"fmt"
	"sort"
	"strings"
)

// ExportText renders a deck as a plain text list: an optional name
// comment, heroes with their deployment turn, then counted cards, both in
// ascending id order.
func ExportText(d *Deck) string {
	var lines []string
	if d.Name != "" {
		lines = append(lines, "# "+d.Name)
	}

	heroes := append([]Hero(nil), d.Heroes...)
	sort.Slice(heroes, func(i, j int) bool { return heroes[i].ID < heroes[j].ID })
	for _, h := range heroes {
		lines = append(lines, fmt.Sprintf("hero %s (turn %d)", h.Card.Name, h.Turn))
	}

	slots := append([]CardSlot(nil), d.Cards...)
	sort.Slice(slots, func(i, j int) bool { return slots[i].ID < slots[j].ID })
	for _, s := range slots {
		lines = append(lines, fmt.Sprintf("%dx %s", s.Count, s.Card.Name))
	}
	return strings.Join(lines, "\n")
}
