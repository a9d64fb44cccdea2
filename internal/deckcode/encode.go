package deckcode

import (
	"encoding/base64"
	"fmt"
	"sort"
	"strings"
)

const (
	headerSize = 3

	// maxNameLength is the hard character limit of a version 2 deck name.
	maxNameLength = 63

	// extendedCountMarker in an entry header's top two bits means the
	// turn/count did not fit inline and follows as its own varint.
	extendedCountMarker = 3

	// maxBytesPerEntry is a sanity ceiling, not a format limit.
	maxBytesPerEntry = 11
)

var stdToURLB64 = strings.NewReplacer("/", "-", "=", "_")

// Encode serializes deck contents as a deck code at the latest version.
func Encode(contents DeckContents) (string, error) {
	return EncodeVersion(contents, versionLatest)
}

// EncodeVersion serializes deck contents at the requested wire version.
// Only the latest version (2) can be encoded; version 1 codes are
// decode-only.
func EncodeVersion(contents DeckContents, version int) (string, error) {
	if version != versionLatest {
		return "", fmt.Errorf("%w: cannot encode version %d, only %d", ErrUnsupportedVersion, version, versionLatest)
	}

	heroes := append([]HeroEntry(nil), contents.Heroes...)
	cards := append([]CardEntry(nil), contents.Cards...)
	sort.SliceStable(heroes, func(i, j int) bool { return heroes[i].ID < heroes[j].ID })
	sort.SliceStable(cards, func(i, j int) bool { return cards[i].ID < cards[j].ID })

	name := sanitizeName(contents.Name)

	e := &encoder{}
	e.buf = append(e.buf, byte(version<<4)|extractBitsWithCarry(uint64(len(heroes)), 3))
	e.buf = append(e.buf, 0) // checksum placeholder
	e.buf = append(e.buf, byte(len(name)))
	e.buf = writeRemainingBits(e.buf, uint64(len(heroes)), 3)

	var previousCardID uint64
	for _, h := range heroes {
		if err := e.addEntry(h.Turn, h.ID-previousCardID); err != nil {
			return "", err
		}
		previousCardID = h.ID
	}
	previousCardID = 0
	for _, c := range cards {
		if err := e.addEntry(c.Count, c.ID-previousCardID); err != nil {
			return "", err
		}
		previousCardID = c.ID
	}

	nameStart := len(e.buf)
	e.buf = append(e.buf, name...)

	var sum byte
	for _, b := range e.buf[headerSize:nameStart] {
		sum += b
	}
	e.buf[1] = sum

	return Prefix + stdToURLB64.Replace(base64.StdEncoding.EncodeToString(e.buf)), nil
}

type encoder struct {
	buf []byte
}

// addEntry appends one serialized hero/card entry: a header byte holding
// the inline turn/count and the first five bits of the id delta, the rest
// of the delta, and the extended turn/count varint when it exceeds 3.
func (e *encoder) addEntry(countOrTurn, idDelta uint64) error {
	if countOrTurn == 0 {
		return ErrInvalidEntry
	}
	start := len(e.buf)

	extended := countOrTurn-1 >= extendedCountMarker
	inline := countOrTurn - 1
	if extended {
		inline = extendedCountMarker
	}
	header := byte(inline<<6) | extractBitsWithCarry(idDelta, 5)
	e.buf = append(e.buf, header)
	e.buf = writeRemainingBits(e.buf, idDelta, 5)
	if extended {
		e.buf = writeRemainingBits(e.buf, countOrTurn, 0)
	}

	if len(e.buf)-start > maxBytesPerEntry {
		return fmt.Errorf("%w: entry took %d bytes", ErrEntryTooLarge, len(e.buf)-start)
	}
	return nil
}

// sanitizeName strips tag-like runs, then trims the name down to the 63
// character cap, removing proportionally more per pass the further it
// overshoots.
func sanitizeName(name string) string {
	runes := []rune(stripTags(name))
	for len(runes) > maxNameLength {
		trim := (len(runes) - maxNameLength) / 4
		if trim < 1 {
			trim = 1
		}
		runes = runes[:len(runes)-trim]
	}
	return string(runes)
}
