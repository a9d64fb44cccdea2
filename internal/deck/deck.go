// Package deck binds decoded deck contents to the card catalog: every
// hero and card entry gets its catalog instance attached, and the deck
// can be turned back into a shareable code at any point.
package deck

import (
	"fmt"

	"github.com/youruser/artifactdeck/internal/cards"
	"github.com/youruser/artifactdeck/internal/deckcode"
)

// Hero is a hero entry enriched with its catalog card.
type Hero struct {
	ID   uint64      `json:"id"`
	Turn uint64      `json:"turn"`
	Card *cards.Card `json:"card,omitempty"`
}

// CardSlot is a card entry enriched with its catalog card.
type CardSlot struct {
	ID    uint64      `json:"id"`
	Count uint64      `json:"count"`
	Card  *cards.Card `json:"card,omitempty"`
}

// Deck is a named deck whose entries are resolved against a catalog.
type Deck struct {
	Name   string     `json:"name,omitempty"`
	Heroes []Hero     `json:"heroes"`
	Cards  []CardSlot `json:"cards"`

	catalog *cards.Catalog
}

// New builds a deck from raw contents, resolving every id against the
// catalog. Unknown ids fail.
func New(contents deckcode.DeckContents, catalog *cards.Catalog) (*Deck, error) {
	d := &Deck{Name: contents.Name, catalog: catalog}
	for _, h := range contents.Heroes {
		card, ok := catalog.ByID(int(h.ID))
		if !ok {
			return nil, fmt.Errorf("deck: unknown hero card id %d", h.ID)
		}
		d.Heroes = append(d.Heroes, Hero{ID: h.ID, Turn: h.Turn, Card: card})
	}
	for _, c := range contents.Cards {
		card, ok := catalog.ByID(int(c.ID))
		if !ok {
			return nil, fmt.Errorf("deck: unknown card id %d", c.ID)
		}
		d.Cards = append(d.Cards, CardSlot{ID: c.ID, Count: c.Count, Card: card})
	}
	return d, nil
}

// FromCode decodes a deck code and resolves it against the catalog.
func FromCode(code string, catalog *cards.Catalog) (*Deck, error) {
	contents, err := deckcode.Decode(code)
	if err != nil {
		return nil, err
	}
	return New(contents, catalog)
}

// Contents strips the deck back down to the plain value the codec works
// on.
func (d *Deck) Contents() deckcode.DeckContents {
	contents := deckcode.DeckContents{Name: d.Name}
	for _, h := range d.Heroes {
		contents.Heroes = append(contents.Heroes, deckcode.HeroEntry{ID: h.ID, Turn: h.Turn})
	}
	for _, c := range d.Cards {
		contents.Cards = append(contents.Cards, deckcode.CardEntry{ID: c.ID, Count: c.Count})
	}
	return contents
}

// Code encodes the deck at the latest deck code version.
func (d *Deck) Code() (string, error) {
	return deckcode.Encode(d.Contents())
}

// ExpandCards flattens the deck into one card instance per copy. With
// heroIncludes set, the cards each hero brings along automatically are
// appended too.
func (d *Deck) ExpandCards(heroIncludes bool) []*cards.Card {
	var out []*cards.Card
	for _, slot := range d.Cards {
		for i := uint64(0); i < slot.Count; i++ {
			out = append(out, slot.Card)
		}
	}
	if heroIncludes {
		for _, h := range d.Heroes {
			out = append(out, d.catalog.Includes(h.Card)...)
		}
	}
	return out
}

// Items returns the item cards of the deck, optionally narrowed to one
// sub type.
func (d *Deck) Items(subType string) []*cards.Card {
	f := cards.NewFilter(d.ExpandCards(false)).Type(cards.TypeItem)
	if subType != "" {
		f = f.SubType(subType)
	}
	return f.Cards()
}

// ManaCurve counts castable deck cards per mana cost, one per copy.
func (d *Deck) ManaCurve() map[int]int {
	curve := map[int]int{}
	for _, card := range d.ExpandCards(false) {
		if card.IsCastable() {
			curve[card.ManaCost]++
		}
	}
	return curve
}

// Validate reports deck-legality problems: the codec deliberately never
// checks these. Abilities cannot be deck material, hero entries must not
// repeat a card, and auto-included cards must not be listed explicitly.
func (d *Deck) Validate() []string {
	var problems []string

	seenHeroes := map[uint64]bool{}
	included := map[int]bool{}
	for _, h := range d.Heroes {
		if h.Card.Type != cards.TypeHero {
			problems = append(problems, fmt.Sprintf("%q (id %d) is a %s, not a hero", h.Card.Name, h.ID, h.Card.Type))
		}
		if seenHeroes[h.ID] {
			problems = append(problems, fmt.Sprintf("hero %q (id %d) appears more than once", h.Card.Name, h.ID))
		}
		seenHeroes[h.ID] = true
		for _, inc := range d.catalog.Includes(h.Card) {
			included[inc.ID] = true
		}
	}

	for _, slot := range d.Cards {
		switch {
		case slot.Card.IsAbility():
			problems = append(problems, fmt.Sprintf("%q (id %d) is an ability and cannot be a deck card", slot.Card.Name, slot.ID))
		case slot.Card.Type == cards.TypeHero:
			problems = append(problems, fmt.Sprintf("hero %q (id %d) belongs in the hero list", slot.Card.Name, slot.ID))
		case included[slot.Card.ID]:
			problems = append(problems, fmt.Sprintf("%q (id %d) is auto-included by a hero and must not be listed", slot.Card.Name, slot.ID))
		}
	}
	return problems
}
