package deckcode

import "errors"

// Decode errors. Every failure aborts the whole decode; there is no
// partial result. Match with errors.Is.
var (
	// ErrInvalidFormat means the string is not a deck code at all: wrong
	// prefix or undecodable base64 payload.
	ErrInvalidFormat = errors.New("deckcode: invalid deck code format")

	// ErrEmptyPayload means the base64 payload decoded to zero bytes.
	ErrEmptyPayload = errors.New("deckcode: empty payload")

	// ErrUnsupportedVersion means the wire version is outside the
	// supported set ({1, 2} for decoding, {2} for encoding).
	ErrUnsupportedVersion = errors.New("deckcode: unsupported deck code version")

	// ErrChecksumMismatch means the stored checksum byte does not match
	// the card region.
	ErrChecksumMismatch = errors.New("deckcode: checksum mismatch")

	// ErrTruncatedData means a varint or card entry read ran past the
	// declared region boundary.
	ErrTruncatedData = errors.New("deckcode: truncated deck data")
)

// Encode errors.
var (
	// ErrEntryTooLarge means a single hero/card entry serialized beyond
	// the 11-byte sanity ceiling.
	ErrEntryTooLarge = errors.New("deckcode: serialized entry too large")

	// ErrInvalidEntry means an entry carried a zero turn or count, which
	// the wire format cannot represent.
	ErrInvalidEntry = errors.New("deckcode: entry turn or count must be at least 1")
)
