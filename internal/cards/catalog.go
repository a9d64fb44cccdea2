package cards

import "strings"

// Catalog indexes loaded card sets by id and by lowercased name. It is
// built once and read-only afterwards, so lookups need no locking.
type Catalog struct {
	Language string
	Sets     []*CardSet

	byID   map[int]*Card
	byName map[string][]*Card
}

func NewCatalog(language string) *Catalog {
	if language == "" {
		language = DefaultLanguage
	}
	return &Catalog{
		Language: language,
		byID:     map[int]*Card{},
		byName:   map[string][]*Card{},
	}
}

// AddSet indexes a card set into the catalog.
func (c *Catalog) AddSet(set *CardSet) {
	c.Sets = append(c.Sets, set)
	for _, card := range set.Cards {
		c.byID[card.BaseID] = card
		key := strings.ToLower(card.Name)
		c.byName[key] = append(c.byName[key], card)
	}
}

// ByID looks a card up by its base id.
func (c *Catalog) ByID(id int) (*Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

// Get looks a card up by name, case insensitively. Some cards share a
// name with one of their abilities; Get prefers the card that is not an
// ability, falling back to the first registered match.
func (c *Catalog) Get(name string) *Card {
	found := c.byName[strings.ToLower(name)]
	if len(found) == 0 {
		return nil
	}
	for _, card := range found {
		if !card.IsAbility() {
			return card
		}
	}
	return found[0]
}

// GetAll returns every card registered under a name.
func (c *Catalog) GetAll(name string) []*Card {
	return c.byName[strings.ToLower(name)]
}

// All returns the cards of every loaded set.
func (c *Catalog) All() []*Card {
	var out []*Card
	for _, set := range c.Sets {
		out = append(out, set.Cards...)
	}
	return out
}

// Filter starts a chainable filter over every loaded card.
func (c *Catalog) Filter() *Filter {
	return NewFilter(c.All())
}

// References resolves a card's plain references against the catalog.
func (c *Catalog) References(card *Card) []*Card {
	return c.refCards(card, RefReferences, false)
}

// ActiveAbilities resolves a card's active abilities.
func (c *Catalog) ActiveAbilities(card *Card) []*Card {
	return c.refCards(card, RefActiveAbility, false)
}

// PassiveAbilities resolves a card's passive abilities.
func (c *Catalog) PassiveAbilities(card *Card) []*Card {
	return c.refCards(card, RefPassiveAbility, false)
}

// Includes resolves the cards a hero automatically brings into a deck,
// repeated per their reference count.
func (c *Catalog) Includes(card *Card) []*Card {
	return c.refCards(card, RefIncludes, true)
}

func (c *Catalog) refCards(card *Card, refType string, repeat bool) []*Card {
	var out []*Card
	for _, ref := range card.References {
		if ref.Type != refType {
			continue
		}
		target, ok := c.byID[ref.CardID]
		if !ok {
			continue
		}
		n := 1
		if repeat && ref.Count > 1 {
			n = ref.Count
		}
		for i := 0; i < n; i++ {
			out = append(out, target)
		}
	}
	return out
}
