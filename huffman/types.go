// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package huffman implements a whole-buffer Huffman compressor for 256-symbol (byte) alphabets.

Compress counts byte frequencies, builds a Huffman tree from them, derives a prefix-free code table and
packs the codewords of the input into a self-describing container that carries the frequency table.
Decompress reads the frequency table back, rebuilds the identical tree and code table, and decodes the
packed bits.  The individual stages (Analyze, BuildTree, NewTable, Encode, Decode) are exported for callers
that want to inspect them.
*/
package huffman

const totalSymbols = 256

// maxCodewordLen is the longest codeword a Codeword can hold.
const maxCodewordLen = 64

// Codeword is a Huffman code for one symbol: the low Len bits of Bits, first bit most significant.
type Codeword struct {
	Bits uint64
	Len  uint8
}

// appendBit returns cw extended by one bit.  The caller must ensure cw.Len < maxCodewordLen.
func (cw Codeword) appendBit(bit uint64) Codeword {
	return Codeword{cw.Bits<<1 | bit&1, cw.Len + 1}
}

func (cw Codeword) String() string {
	runes := make([]rune, cw.Len)
	for i := range runes {
		if (cw.Bits>>uint(int(cw.Len)-1-i))&1 == 0 {
			runes[i] = '0'
		} else {
			runes[i] = '1'
		}
	}
	return string(runes)
}

// BitString represents a packed bit string.  Within each octet, bits are addressed most significant first.
//
// Invariants:
//   - 0 <= BitLength <= len(Packed)*8 < BitLength+8
//   - if BitLength%8 != 0, the low (8 - BitLength%8) bits of Packed[BitLength/8] are zero
type BitString struct {
	Packed    []uint8
	BitLength int
}

// Padding returns the number of zero bits that fill out the last octet of bs.
func (bs BitString) Padding() uint8 {
	return uint8((8 - bs.BitLength%8) % 8)
}

// check returns a FormatError if any of the invariants are invalid for bs.
func (bs BitString) check() error {
	switch {
	case bs.BitLength < 0:
		return formatErrorf(FormatInvalid, "bitstream", "negative bit length %d", bs.BitLength)
	case bs.BitLength > len(bs.Packed)*8:
		return formatErrorf(FormatTruncated, "packed_bits", "%d bits declared in %d octets",
			bs.BitLength, len(bs.Packed))
	case len(bs.Packed)*8 >= bs.BitLength+8:
		return formatErrorf(FormatTrailing, "packed_bits", "%d bits declared in %d octets",
			bs.BitLength, len(bs.Packed))
	}

	if bs.BitLength%8 != 0 {
		// Conversion safety: 0 < bs.BitLength%8 <= 7.
		shift := uint(8 - bs.BitLength%8)
		lowBits := bs.Packed[bs.BitLength/8] & (uint8(1)<<shift - 1)
		if lowBits != 0 {
			return formatErrorf(FormatInvalid, "pad_length", "nonzero padding bits %#x", lowBits)
		}
	}
	return nil
}

func (bs BitString) String() string {
	prefix := []rune{'#', '*'}
	allRunes := make([]rune, len(prefix)+bs.BitLength)
	copy(allRunes, prefix)

	bitRunes := allRunes[len(prefix):]
	for i := range bitRunes {
		bit := (bs.Packed[i/8] >> uint(7-i%8)) & 1
		if bit == 0 {
			bitRunes[i] = '0'
		} else {
			bitRunes[i] = '1'
		}
	}

	return string(allRunes)
}
