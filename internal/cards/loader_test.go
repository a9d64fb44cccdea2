package cards

import "testing"

// fixtureSetJSON is a trimmed-down card set in the shape the CDN serves.
const fixtureSetJSON = `{
  "version": 1,
  "set_info": {
    "set_id": 0,
    "pack_item_def": 0,
    "name": {"english": "Test Set"}
  },
  "card_list": [
    {
      "card_id": 4005,
      "base_card_id": 4005,
      "card_type": "Hero",
      "card_name": {"english": "Debbi the Cunning"},
      "card_text": {"english": "A test hero."},
      "mini_image": {"default": "https://cdn.test/mini/4005.png"},
      "large_image": {"english": "https://cdn.test/large/4005_en.png", "default": "https://cdn.test/large/4005.png"},
      "ingame_image": {"default": "https://cdn.test/ingame/4005.png"},
      "illustrator": "Someone",
      "is_green": true,
      "attack": 4,
      "armor": 0,
      "hit_points": 6,
      "references": [
        {"card_id": 4006, "ref_type": "includes", "count": 3},
        {"card_id": 4007, "ref_type": "passive_ability"}
      ]
    },
    {
      "card_id": 4006,
      "base_card_id": 4006,
      "card_type": "Spell",
      "card_name": {"english": "Sucker Punch"},
      "card_text": {"english": "A test spell."},
      "mini_image": {}, "large_image": {}, "ingame_image": {},
      "illustrator": "Someone",
      "rarity": "Rare",
      "is_green": true,
      "mana_cost": 5
    },
    {
      "card_id": 4007,
      "base_card_id": 4007,
      "card_type": "Passive Ability",
      "card_name": {"english": "Sucker Punch"},
      "card_text": {"english": "The ability sharing its card's name."},
      "mini_image": {}, "large_image": {}, "ingame_image": {}
    },
    {
      "card_id": 4008,
      "base_card_id": 4008,
      "card_type": "Item",
      "sub_type": "Weapon",
      "card_name": {"english": "Shortsword"},
      "card_text": {},
      "mini_image": {}, "large_image": {}, "ingame_image": {},
      "illustrator": "Someone",
      "rarity": "Common",
      "gold_cost": 3
    },
    {
      "card_id": 4009,
      "base_card_id": 4009,
      "card_type": "Creep",
      "card_name": {"english": "Ravenous Mass"},
      "card_text": {},
      "mini_image": {}, "large_image": {}, "ingame_image": {},
      "illustrator": "Someone",
      "is_black": true,
      "attack": 6, "hit_points": 8,
      "mana_cost": 7
    },
    {
      "card_id": 4010,
      "base_card_id": 4010,
      "card_type": "Stronghold",
      "card_name": {"english": "Stronghold"},
      "card_text": {},
      "mini_image": {}, "large_image": {}, "ingame_image": {}
    }
  ]
}`

func fixtureCatalog(t *testing.T) *Catalog {
	t.Helper()
	set, err := ParseCardSet("00", []byte(fixtureSetJSON), "english")
	if err != nil {
		t.Fatalf("ParseCardSet: %v", err)
	}
	catalog := NewCatalog("english")
	catalog.AddSet(set)
	return catalog
}

func TestParseCardSet(t *testing.T) {
	set, err := ParseCardSet("00", []byte(fixtureSetJSON), "english")
	if err != nil {
		t.Fatalf("ParseCardSet: %v", err)
	}
	if set.Info.Name != "Test Set" {
		t.Errorf("set name = %q", set.Info.Name)
	}
	// The Stronghold entry is a core mechanic and must not be indexed.
	if len(set.Cards) != 5 {
		t.Fatalf("card count = %d, want 5", len(set.Cards))
	}

	hero := set.Cards[0]
	if hero.Name != "Debbi the Cunning" || hero.Type != TypeHero {
		t.Errorf("hero = %+v", hero)
	}
	if hero.Color != "green" {
		t.Errorf("hero color = %q, want green", hero.Color)
	}
	if hero.LargeImage != "https://cdn.test/large/4005_en.png" {
		t.Errorf("large image should prefer the configured language, got %q", hero.LargeImage)
	}
	if hero.Attack != 4 || hero.HitPoints != 6 {
		t.Errorf("hero stats = %d/%d", hero.Attack, hero.HitPoints)
	}
}

func TestParseCardSetLanguageFallback(t *testing.T) {
	set, err := ParseCardSet("00", []byte(fixtureSetJSON), "german")
	if err != nil {
		t.Fatalf("ParseCardSet: %v", err)
	}
	// No german strings in the fixture: names fall back to english.
	if set.Cards[0].Name != "Debbi the Cunning" {
		t.Errorf("name = %q, want english fallback", set.Cards[0].Name)
	}
}

func TestCatalogLookups(t *testing.T) {
	catalog := fixtureCatalog(t)

	card, ok := catalog.ByID(4008)
	if !ok || card.Name != "Shortsword" {
		t.Errorf("ByID(4008) = %+v, %v", card, ok)
	}
	if _, ok := catalog.ByID(99999); ok {
		t.Error("ByID should miss on unknown ids")
	}

	// Case-insensitive name lookup.
	if got := catalog.Get("ravenous mass"); got == nil || got.ID != 4009 {
		t.Errorf("Get(ravenous mass) = %+v", got)
	}

	// "Sucker Punch" names both a spell and a passive ability; Get must
	// prefer the card that is not an ability.
	got := catalog.Get("Sucker Punch")
	if got == nil || got.Type != TypeSpell {
		t.Errorf("Get(Sucker Punch) = %+v, want the spell", got)
	}
	if all := catalog.GetAll("Sucker Punch"); len(all) != 2 {
		t.Errorf("GetAll(Sucker Punch) returned %d cards, want 2", len(all))
	}
}

func TestCatalogReferences(t *testing.T) {
	catalog := fixtureCatalog(t)
	hero, _ := catalog.ByID(4005)

	includes := catalog.Includes(hero)
	if len(includes) != 3 {
		t.Fatalf("Includes = %d cards, want 3 (count respected)", len(includes))
	}
	for _, inc := range includes {
		if inc.ID != 4006 {
			t.Errorf("include = %+v, want card 4006", inc)
		}
	}

	passives := catalog.PassiveAbilities(hero)
	if len(passives) != 1 || passives[0].ID != 4007 {
		t.Errorf("PassiveAbilities = %+v", passives)
	}
}
