// Package deckcode implements the Artifact deck code format: a compact,
// URL-safe string that carries a deck name, its heroes with deployment
// turns and its other cards with counts.
//
// Two wire versions exist. Version 1 has no deck name, version 2 appends
// the name (up to 63 characters) after the card data. Both can be decoded;
// only version 2 is produced when encoding.
package deckcode

// Prefix starts every valid deck code.
const Prefix = "ADC"

// Supported wire versions for decoding.
const (
	versionOldest = 1
	versionLatest = 2
)

// HeroEntry is one hero in a deck: a card id and the turn the hero is
// deployed on.
type HeroEntry struct {
	ID   uint64 `json:"id"`
	Turn uint64 `json:"turn"`
}

// CardEntry is one non-hero card in a deck with its copy count.
type CardEntry struct {
	ID    uint64 `json:"id"`
	Count uint64 `json:"count"`
}

// DeckContents is the decoded form of a deck code. It is a plain value:
// the codec neither validates deck legality nor keeps any state between
// calls.
type DeckContents struct {
	Name   string      `json:"name,omitempty"`
	Heroes []HeroEntry `json:"heroes"`
	Cards  []CardEntry `json:"cards"`
}
