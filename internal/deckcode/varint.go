package deckcode

import "fmt"

// The deck code varint is not the plain base-128 kind: the first chunk of a
// value can live inside another byte (the low bits of the version byte, or
// of a card entry header). A continuation flag at bit position numBits says
// whether 7-bit continuation bytes follow.

// readBitsChunk merges the low numBits bits of chunk into *out at the given
// shift and reports whether the chunk's continuation flag is set.
func readBitsChunk(chunk byte, numBits, shift uint, out *uint64) bool {
	continueBit := uint64(1) << numBits
	*out |= (uint64(chunk) & (continueBit - 1)) << shift
	return uint64(chunk)&continueBit != 0
}

// readVarEncoded decodes a variable-length value whose first baseBits bits
// are already present in baseValue. It consumes continuation bytes from buf
// starting at cursor and returns the value together with the new cursor
// position. Reading past maxIndex fails with ErrTruncatedData.
func readVarEncoded(baseValue byte, baseBits uint, buf []byte, cursor, maxIndex int) (uint64, int, error) {
	var value uint64
	more := readBitsChunk(baseValue, baseBits, 0, &value)
	if baseBits == 0 || more {
		shift := baseBits
		for {
			if cursor > maxIndex || cursor >= len(buf) {
				return 0, cursor, fmt.Errorf("%w: varint runs past byte %d", ErrTruncatedData, maxIndex)
			}
			next := buf[cursor]
			cursor++
			if !readBitsChunk(next, 7, shift, &value) {
				break
			}
			shift += 7
		}
	}
	return value, cursor, nil
}

// extractBitsWithCarry returns a byte holding the low numBits bits of
// value, with the continuation flag (bit numBits) set when higher bits
// remain to be written.
func extractBitsWithCarry(value uint64, numBits uint) byte {
	limitBit := uint64(1) << numBits
	result := value & (limitBit - 1)
	if value >= limitBit {
		result |= limitBit
	}
	return byte(result)
}

// writeRemainingBits appends the bits of value above alreadyWritten as a
// chain of 7-bit continuation bytes.
func writeRemainingBits(buf []byte, value uint64, alreadyWritten uint) []byte {
	value >>= alreadyWritten
	for value > 0 {
		buf = append(buf, extractBitsWithCarry(value, 7))
		value >>= 7
	}
	return buf
}
