// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/icza/bitio"
)

var ErrSymbolMissing = errors.New("huffman: symbol has no codeword")

// Encode concatenates the codewords for the bytes of data, in order, and packs them most significant bit
// first.  The last octet is filled out with zero bits; the returned BitString's Padding says how many.
// Every byte of data must have a codeword in t.
func Encode(t *Table, data []byte) (BitString, error) {
	var out bytes.Buffer
	out.Grow(len(data)/2 + 1)
	bwr := bitio.NewCountWriter(&out)

	for i, b := range data {
		cw, ok := t.Code(b)
		if !ok {
			return BitString{}, fmt.Errorf("%w: byte %#02x at offset %d", ErrSymbolMissing, b, i)
		}
		if err := bwr.WriteBits(cw.Bits, cw.Len); err != nil {
			return BitString{}, err
		}
	}

	// Read the count before aligning; Align counts the padding bits as written.
	bitLength := bwr.BitsCount
	if _, err := bwr.Align(); err != nil {
		return BitString{}, err
	}

	return BitString{Packed: out.Bytes(), BitLength: int(bitLength)}, nil
}
