package deckcode

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// urlToStdB64 undoes the URL-safe substitution applied when encoding.
// Note this is not the standard base64.URLEncoding alphabet: the format
// swaps '/' for '-' and '=' for '_' but leaves '+' alone.
var urlToStdB64 = strings.NewReplacer("-", "/", "_", "=")

// Decode parses a deck code string into its contents. Heroes and cards
// come back in the canonical order they sit on the wire (ascending id).
func Decode(code string) (DeckContents, error) {
	if !strings.HasPrefix(code, Prefix) {
		return DeckContents{}, fmt.Errorf("%w: missing %q prefix", ErrInvalidFormat, Prefix)
	}
	payload, err := base64.StdEncoding.DecodeString(urlToStdB64.Replace(code[len(Prefix):]))
	if err != nil {
		return DeckContents{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if len(payload) == 0 {
		return DeckContents{}, ErrEmptyPayload
	}
	d := &decoder{payload: payload}
	return d.decode()
}

// decoder holds the cursor state for a single Decode call, so decoding
// stays reentrant with no shared mutable state.
type decoder struct {
	payload []byte
	cursor  int

	nameLength     int
	cardBytesStart int
	totalCardBytes int

	// previous absolute id within the current list; entry ids are stored
	// as deltas against it.
	previousCardBase uint64
}

func (d *decoder) decode() (DeckContents, error) {
	versionByte := d.payload[0]
	version := int(versionByte >> 4)

	switch version {
	case versionOldest:
		// no name, card data starts right after version and checksum
		d.nameLength = 0
		d.cardBytesStart = 2
	case versionLatest:
		if len(d.payload) < 3 {
			return DeckContents{}, fmt.Errorf("%w: header needs 3 bytes, have %d", ErrTruncatedData, len(d.payload))
		}
		d.nameLength = int(d.payload[2])
		d.cardBytesStart = 3
	default:
		return DeckContents{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}

	d.totalCardBytes = len(d.payload) - d.nameLength
	if d.totalCardBytes < d.cardBytesStart {
		return DeckContents{}, fmt.Errorf("%w: name length %d exceeds payload", ErrTruncatedData, d.nameLength)
	}

	if err := d.verifyChecksum(); err != nil {
		return DeckContents{}, err
	}

	d.cursor = d.cardBytesStart
	heroCount, cursor, err := readVarEncoded(versionByte, 3, d.payload, d.cursor, d.totalCardBytes)
	if err != nil {
		return DeckContents{}, err
	}
	d.cursor = cursor

	// heroCount comes off the wire; cap the preallocation and let the
	// per-entry truncation checks reject absurd counts.
	capHint := heroCount
	if capHint > 64 {
		capHint = 64
	}
	heroes := make([]HeroEntry, 0, capHint)
	d.previousCardBase = 0
	for i := uint64(0); i < heroCount; i++ {
		turn, id, err := d.readSerializedEntry(d.totalCardBytes)
		if err != nil {
			return DeckContents{}, err
		}
		heroes = append(heroes, HeroEntry{ID: id, Turn: turn})
	}

	cards := []CardEntry{}
	d.previousCardBase = 0
	for d.cursor < d.totalCardBytes {
		count, id, err := d.readSerializedEntry(len(d.payload))
		if err != nil {
			return DeckContents{}, err
		}
		cards = append(cards, CardEntry{ID: id, Count: count})
	}

	name := ""
	if d.nameLength > 0 {
		name = stripTags(string(d.payload[len(d.payload)-d.nameLength:]))
	}

	return DeckContents{Name: name, Heroes: heroes, Cards: cards}, nil
}

// verifyChecksum sums the card region (header end up to the name bytes)
// modulo 256 and compares it against the stored checksum byte.
func (d *decoder) verifyChecksum() error {
	var sum byte
	for _, b := range d.payload[d.cardBytesStart:d.totalCardBytes] {
		sum += b
	}
	if d.payload[1] != sum {
		return fmt.Errorf("%w: computed %#02x, stored %#02x", ErrChecksumMismatch, sum, d.payload[1])
	}
	return nil
}

// readSerializedEntry reads one hero or card entry. The header byte's top
// two bits carry turn/count minus one, unless they are all set, in which
// case the real value follows the id delta as its own varint.
func (d *decoder) readSerializedEntry(readUntil int) (countOrTurn, id uint64, err error) {
	if d.cursor > readUntil || d.cursor >= len(d.payload) {
		return 0, 0, fmt.Errorf("%w: entry header at byte %d", ErrTruncatedData, d.cursor)
	}
	header := d.payload[d.cursor]
	d.cursor++

	delta, cursor, err := readVarEncoded(header, 5, d.payload, d.cursor, readUntil)
	if err != nil {
		return 0, 0, err
	}
	d.cursor = cursor
	id = d.previousCardBase + delta

	if header>>6 == extendedCountMarker {
		countOrTurn, cursor, err = readVarEncoded(0, 0, d.payload, d.cursor, readUntil)
		if err != nil {
			return 0, 0, err
		}
		d.cursor = cursor
	} else {
		countOrTurn = uint64(header>>6) + 1
	}

	d.previousCardBase = id
	return countOrTurn, id, nil
}
