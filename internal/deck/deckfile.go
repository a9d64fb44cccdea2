package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/youruser/artifactdeck/internal/deckcode"
)

// DeckFile is the YAML shape for decks kept in files:
//
//	name: Green/Black Example
//	heroes:
//	  - id: 4005
//	    turn: 2
//	cards:
//	  - id: 3000
//	    count: 2
type DeckFile struct {
	Name   string `yaml:"name"`
	Heroes []struct {
		ID   uint64 `yaml:"id"`
		Turn uint64 `yaml:"turn"`
	} `yaml:"heroes"`
	Cards []struct {
		ID    uint64 `yaml:"id"`
		Count uint64 `yaml:"count"`
	} `yaml:"cards"`
}

// ParseDeckFile unmarshals a YAML deck file into codec contents.
func ParseDeckFile(data []byte) (deckcode.DeckContents, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return deckcode.DeckContents{}, fmt.Errorf("deck file: %w", err)
	}
	contents := deckcode.DeckContents{Name: df.Name}
	for _, h := range df.Heroes {
		contents.Heroes = append(contents.Heroes, deckcode.HeroEntry{ID: h.ID, Turn: h.Turn})
	}
	for _, c := range df.Cards {
		contents.Cards = append(contents.Cards, deckcode.CardEntry{ID: c.ID, Count: c.Count})
	}
	return contents, nil
}

// LoadDeckFile reads and parses a YAML deck file.
func LoadDeckFile(path string) (deckcode.DeckContents, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return deckcode.DeckContents{}, err
	}
	return ParseDeckFile(data)
}
