package cards

import "strings"

// Filter is a chainable, non-destructive card filter. Every method
// returns a new Filter over the matching cards, so intermediate results
// can be branched and reused.
type Filter struct {
	cards []*Card
}

func NewFilter(cards []*Card) *Filter {
	return &Filter{cards: cards}
}

// Cards returns the current matches.
func (f *Filter) Cards() []*Card { return f.cards }

func (f *Filter) Len() int { return len(f.cards) }

func (f *Filter) keep(pred func(*Card) bool) *Filter {
	var out []*Card
	for _, c := range f.cards {
		if pred(c) {
			out = append(out, c)
		}
	}
	return &Filter{cards: out}
}

// Type keeps cards of one type.
func (f *Filter) Type(cardType string) *Filter {
	return f.keep(func(c *Card) bool { return c.Type == cardType })
}

// NotType drops cards of one type.
func (f *Filter) NotType(cardType string) *Filter {
	return f.keep(func(c *Card) bool { return c.Type != cardType })
}

// TypesIn keeps cards whose type is one of the given.
func (f *Filter) TypesIn(cardTypes ...string) *Filter {
	return f.keep(func(c *Card) bool { return contains(cardTypes, c.Type) })
}

// TypesNotIn drops cards whose type is one of the given.
func (f *Filter) TypesNotIn(cardTypes ...string) *Filter {
	return f.keep(func(c *Card) bool { return !contains(cardTypes, c.Type) })
}

// Color keeps colored cards of one color.
func (f *Filter) Color(color string) *Filter {
	color = strings.ToLower(color)
	return f.keep(func(c *Card) bool { return c.Color != "" && c.Color == color })
}

// ColorIn keeps colored cards whose color is one of the given.
func (f *Filter) ColorIn(colors ...string) *Filter {
	lowered := lowerAll(colors)
	return f.keep(func(c *Card) bool { return c.Color != "" && contains(lowered, c.Color) })
}

// ColorNotIn keeps colored cards whose color is none of the given.
func (f *Filter) ColorNotIn(colors ...string) *Filter {
	lowered := lowerAll(colors)
	return f.keep(func(c *Card) bool { return c.Color != "" && !contains(lowered, c.Color) })
}

// Rarity keeps cards with the given rarity. Base set cards have no
// rarity and never match.
func (f *Filter) Rarity(rarity string) *Filter {
	return f.keep(func(c *Card) bool { return !c.IsAbility() && c.Rarity == rarity })
}

// RarityIn keeps cards whose rarity is one of the given.
func (f *Filter) RarityIn(rarities ...string) *Filter {
	return f.keep(func(c *Card) bool { return !c.IsAbility() && contains(rarities, c.Rarity) })
}

// RarityNotIn keeps non-ability cards whose rarity is none of the given.
func (f *Filter) RarityNotIn(rarities ...string) *Filter {
	return f.keep(func(c *Card) bool { return !c.IsAbility() && !contains(rarities, c.Rarity) })
}

// Cmp is a set of optional comparisons; a card passes when it satisfies
// at least one of the set bounds.
type Cmp struct {
	GT  *int `json:"gt,omitempty"`
	GTE *int `json:"gte,omitempty"`
	LT  *int `json:"lt,omitempty"`
	LTE *int `json:"lte,omitempty"`
	EQ  *int `json:"eq,omitempty"`
}

func (m Cmp) matches(v int) bool {
	switch {
	case m.GT != nil && v > *m.GT:
		return true
	case m.GTE != nil && v >= *m.GTE:
		return true
	case m.LT != nil && v < *m.LT:
		return true
	case m.LTE != nil && v <= *m.LTE:
		return true
	case m.EQ != nil && v == *m.EQ:
		return true
	}
	return false
}

// Int is a convenience for building Cmp literals.
func Int(n int) *int { return &n }

// ManaCost keeps castable cards whose mana cost satisfies the
// comparison. Cards without a mana cost are always dropped.
func (f *Filter) ManaCost(cmp Cmp) *Filter {
	return f.keep(func(c *Card) bool { return c.IsCastable() && cmp.matches(c.ManaCost) })
}

// GoldCost keeps purchasable cards whose gold cost satisfies the
// comparison. Cards without a gold cost are always dropped.
func (f *Filter) GoldCost(cmp Cmp) *Filter {
	return f.keep(func(c *Card) bool { return c.HasGoldCost() && cmp.matches(c.GoldCost) })
}

// SubType keeps items of the given sub type.
func (f *Filter) SubType(subType string) *Filter {
	return f.keep(func(c *Card) bool { return c.SubType == subType })
}

// FreeText keeps cards matching every whitespace-separated word against
// name and card text, case insensitively.
func (f *Filter) FreeText(words string) *Filter {
	fields := strings.Fields(strings.ToLower(words))
	return f.keep(func(c *Card) bool {
		name := strings.ToLower(c.Name)
		text := strings.ToLower(c.Text)
		for _, w := range fields {
			if !strings.Contains(name, w) && !strings.Contains(text, w) {
				return false
			}
		}
		return true
	})
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

// FilterOptions is the flat, JSON-bindable form of the filter used by the
// HTTP API.
type FilterOptions struct {
	Types     []string `json:"types,omitempty"`
	Colors    []string `json:"colors,omitempty"`
	Rarities  []string `json:"rarities,omitempty"`
	SubType   string   `json:"sub_type,omitempty"`
	ManaCost  *Cmp     `json:"mana_cost,omitempty"`
	GoldCost  *Cmp     `json:"gold_cost,omitempty"`
	FreeWords string   `json:"free_words,omitempty"`
}

// Apply runs the options against a card list.
func Apply(all []*Card, opt FilterOptions) []*Card {
	f := NewFilter(all)
	if len(opt.Types) > 0 {
		f = f.TypesIn(opt.Types...)
	}
	if len(opt.Colors) > 0 {
		f = f.ColorIn(opt.Colors...)
	}
	if len(opt.Rarities) > 0 {
		f = f.RarityIn(opt.Rarities...)
	}
	if opt.SubType != "" {
		f = f.SubType(opt.SubType)
	}
	if opt.ManaCost != nil {
		f = f.ManaCost(*opt.ManaCost)
	}
	if opt.GoldCost != nil {
		f = f.GoldCost(*opt.GoldCost)
	}
	if opt.FreeWords != "" {
		f = f.FreeText(opt.FreeWords)
	}
	return f.Cards()
}
