// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bytes"

	"github.com/icza/bitio"
)

// Decode reads the first bs.BitLength bits of bs and emits a byte each time the bits accumulated since the
// previous one exactly match a codeword of t.  It fails with a FormatError if bs violates its invariants or
// if its bits do not split into whole codewords.
func Decode(t *Table, bs BitString) ([]byte, error) {
	if err := bs.check(); err != nil {
		return nil, err
	}

	sizeHint := 0
	if t.maxLen > 0 {
		sizeHint = bs.BitLength / int(t.maxLen)
	}
	out := make([]byte, 0, sizeHint)

	brd := bitio.NewReader(bytes.NewReader(bs.Packed))
	var prefix Codeword
	for i := 0; i < bs.BitLength; i++ {
		bit, err := brd.ReadBool()
		if err != nil {
			return nil, formatErrorf(FormatTruncated, "packed_bits", "at bit %d: %v", i, err)
		}

		if bit {
			prefix = prefix.appendBit(1)
		} else {
			prefix = prefix.appendBit(0)
		}

		if symbol, ok := t.symbols[prefix]; ok {
			out = append(out, symbol)
			prefix = Codeword{}
		} else if prefix.Len >= t.maxLen {
			return nil, formatErrorf(FormatInvalid, "packed_bits", "no codeword matches %v ending at bit %d",
				prefix, i)
		}
	}

	if prefix.Len != 0 {
		return nil, formatErrorf(FormatMismatch, "packed_bits", "%d bits left over after the last codeword",
			prefix.Len)
	}
	return out, nil
}
