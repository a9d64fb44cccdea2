package cards

// Card types as they appear in the card set data.
const (
	TypeHero           = "Hero"
	TypePassiveAbility = "Passive Ability"
	TypeSpell          = "Spell"
	TypeCreep          = "Creep"
	TypeAbility        = "Ability"
	TypeItem           = "Item"
	TypeImprovement    = "Improvement"
)

// Reference links a card to another card: an included card, an active or
// passive ability, or a plain mention in the card text.
type Reference struct {
	CardID int    `json:"card_id"`
	Type   string `json:"ref_type"`
	Count  int    `json:"count,omitempty"`
}

// Reference kinds.
const (
	RefIncludes       = "includes"
	RefActiveAbility  = "active_ability"
	RefPassiveAbility = "passive_ability"
	RefReferences     = "references"
)

// Card is a single card from a card set, flattened from the set JSON with
// the configured language already applied to its name and text.
type Card struct {
	ID          int    `json:"card_id"`
	BaseID      int    `json:"base_card_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Text        string `json:"text,omitempty"`
	Color       string `json:"color,omitempty"`
	Rarity      string `json:"rarity,omitempty"`
	Illustrator string `json:"illustrator,omitempty"`
	ItemDef     int    `json:"item_def,omitempty"`

	// unit stats, zero for non-units
	Attack    int `json:"attack,omitempty"`
	Armor     int `json:"armor,omitempty"`
	HitPoints int `json:"hit_points,omitempty"`

	ManaCost int    `json:"mana_cost,omitempty"`
	GoldCost int    `json:"gold_cost,omitempty"`
	SubType  string `json:"sub_type,omitempty"`

	MiniImage   string `json:"mini_image,omitempty"`
	LargeImage  string `json:"large_image,omitempty"`
	IngameImage string `json:"ingame_image,omitempty"`

	References []Reference `json:"references,omitempty"`
}

// IsAbility reports whether the card is an (active or passive) ability.
// Abilities ride along with other cards and cannot sit in a deck
// themselves.
func (c *Card) IsAbility() bool {
	return c.Type == TypeAbility || c.Type == TypePassiveAbility
}

// IsCastable reports whether the card is played for mana.
func (c *Card) IsCastable() bool {
	return c.Type == TypeSpell || c.Type == TypeCreep || c.Type == TypeImprovement
}

// IsUnit reports whether the card fights on a battlefield.
func (c *Card) IsUnit() bool {
	return c.Type == TypeHero || c.Type == TypeCreep
}

// HasGoldCost reports whether the card is bought from the shop.
func (c *Card) HasGoldCost() bool {
	return c.Type == TypeItem
}

// SetInfo describes a card set.
type SetInfo struct {
	ID          int    `json:"set_id"`
	PackItemDef int    `json:"pack_item_def"`
	Name        string `json:"name"`
}

// CardSet is one loaded card set.
type CardSet struct {
	SetNumber  string  `json:"set_number"`
	Version    int     `json:"version"`
	Info       SetInfo `json:"set_info"`
	Cards      []*Card `json:"cards"`
	ExpireTime int64   `json:"expire_time,omitempty"`
}
