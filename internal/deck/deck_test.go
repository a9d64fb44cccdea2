package deck

import (
	"strings"
	"testing"

	"github.com/youruser/artifactdeck/internal/cards"
	"github.com/youruser/artifactdeck/internal/deckcode"
)

func testCatalog() *cards.Catalog {
	set := &cards.CardSet{
		SetNumber: "00",
		Info:      cards.SetInfo{Name: "Test Set"},
		Cards: []*cards.Card{
			{
				ID: 4005, BaseID: 4005, Name: "Debbi the Cunning", Type: cards.TypeHero, Color: "green",
				References: []cards.Reference{
					{CardID: 4006, Type: cards.RefIncludes, Count: 3},
					{CardID: 4007, Type: cards.RefPassiveAbility},
				},
			},
			{ID: 4006, BaseID: 4006, Name: "Sucker Punch", Type: cards.TypeSpell, Color: "green", ManaCost: 5, Rarity: "Rare"},
			{ID: 4007, BaseID: 4007, Name: "Sucker Punch", Type: cards.TypePassiveAbility},
			{ID: 4008, BaseID: 4008, Name: "Shortsword", Type: cards.TypeItem, SubType: "Weapon", GoldCost: 3},
			{ID: 4009, BaseID: 4009, Name: "Ravenous Mass", Type: cards.TypeCreep, Color: "black", ManaCost: 7},
		},
	}
	catalog := cards.NewCatalog("english")
	catalog.AddSet(set)
	return catalog
}

func testContents() deckcode.DeckContents {
	return deckcode.DeckContents{
		Name:   "Test Deck",
		Heroes: []deckcode.HeroEntry{{ID: 4005, Turn: 1}},
		Cards: []deckcode.CardEntry{
			{ID: 4008, Count: 2},
			{ID: 4009, Count: 3},
		},
	}
}

func TestNewResolvesCards(t *testing.T) {
	d, err := New(testContents(), testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Heroes[0].Card == nil || d.Heroes[0].Card.Name != "Debbi the Cunning" {
		t.Errorf("hero card = %+v", d.Heroes[0].Card)
	}
	if d.Cards[0].Card.Name != "Shortsword" {
		t.Errorf("card 0 = %+v", d.Cards[0].Card)
	}
}

func TestNewUnknownID(t *testing.T) {
	contents := testContents()
	contents.Cards = append(contents.Cards, deckcode.CardEntry{ID: 99999, Count: 1})
	if _, err := New(contents, testCatalog()); err == nil {
		t.Fatal("expected error for unknown card id")
	}
}

func TestCodeRoundTrip(t *testing.T) {
	catalog := testCatalog()
	d, err := New(testContents(), catalog)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	code, err := d.Code()
	if err != nil {
		t.Fatalf("Code: %v", err)
	}
	back, err := FromCode(code, catalog)
	if err != nil {
		t.Fatalf("FromCode: %v", err)
	}
	if back.Name != d.Name || len(back.Heroes) != 1 || len(back.Cards) != 2 {
		t.Errorf("round trip deck = %+v", back)
	}
	if back.Heroes[0].Card == nil {
		t.Error("round trip lost the catalog instance")
	}
}

func TestExpandCards(t *testing.T) {
	d, err := New(testContents(), testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	plain := d.ExpandCards(false)
	if len(plain) != 5 { // 2 shortswords + 3 ravenous masses
		t.Errorf("ExpandCards(false) = %d cards, want 5", len(plain))
	}

	withIncludes := d.ExpandCards(true)
	if len(withIncludes) != 8 { // plus 3 included sucker punches
		t.Errorf("ExpandCards(true) = %d cards, want 8", len(withIncludes))
	}
}

func TestItemsAndManaCurve(t *testing.T) {
	d, err := New(testContents(), testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if items := d.Items(""); len(items) != 2 {
		t.Errorf("Items = %d, want the 2 shortsword copies", len(items))
	}
	if items := d.Items("Accessory"); len(items) != 0 {
		t.Errorf("Items(Accessory) = %d, want 0", len(items))
	}
	curve := d.ManaCurve()
	if curve[7] != 3 {
		t.Errorf("mana curve = %v, want 3 cards at cost 7", curve)
	}
}

func TestValidate(t *testing.T) {
	catalog := testCatalog()

	good, err := New(testContents(), catalog)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if problems := good.Validate(); len(problems) != 0 {
		t.Errorf("valid deck reported problems: %v", problems)
	}

	bad := testContents()
	bad.Heroes = append(bad.Heroes, deckcode.HeroEntry{ID: 4005, Turn: 2}) // duplicate hero
	bad.Cards = append(bad.Cards,
		deckcode.CardEntry{ID: 4007, Count: 1}, // ability as deck card
		deckcode.CardEntry{ID: 4006, Count: 1}, // auto-included by the hero
	)
	d, err := New(bad, catalog)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	problems := d.Validate()
	if len(problems) != 3 {
		t.Errorf("Validate = %v, want 3 problems", problems)
	}
}

func TestExportText(t *testing.T) {
	d, err := New(testContents(), testCatalog())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := ExportText(d)
	want := strings.Join([]string{
		"# Test Deck",
		"hero Debbi the Cunning (turn 1)",
		"2x Shortsword",
		"3x Ravenous Mass",
	}, "\n")
	if got != want {
		t.Errorf("ExportText:\n got %q\nwant %q", got, want)
	}
}
