package deck

import (
	"os"
	"path/filepath"
	"testing"
)

const deckFileYAML = `name: Test Deck
heroes:
  - id: 4005
    turn: 1
cards:
  - id: 4008
    count: 2
  - id: 4009
    count: 3
`

func TestParseDeckFile(t *testing.T) {
	contents, err := ParseDeckFile([]byte(deckFileYAML))
	if err != nil {
		t.Fatalf("ParseDeckFile: %v", err)
	}
	if contents.Name != "Test Deck" {
		t.Errorf("name = %q", contents.Name)
	}
	if len(contents.Heroes) != 1 || contents.Heroes[0].ID != 4005 || contents.Heroes[0].Turn != 1 {
		t.Errorf("heroes = %+v", contents.Heroes)
	}
	if len(contents.Cards) != 2 || contents.Cards[1].Count != 3 {
		t.Errorf("cards = %+v", contents.Cards)
	}
}

func TestParseDeckFileInvalid(t *testing.T) {
	if _, err := ParseDeckFile([]byte("{ not yaml")); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestLoadDeckFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	if err := os.WriteFile(path, []byte(deckFileYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	contents, err := LoadDeckFile(path)
	if err != nil {
		t.Fatalf("LoadDeckFile: %v", err)
	}
	if contents.Name != "Test Deck" {
		t.Errorf("name = %q", contents.Name)
	}

	if _, err := LoadDeckFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
