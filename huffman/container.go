// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"encoding/binary"
	"math"
)

// Container layout, integers big-endian:
//
//	entryCount = uint32
//	repeat entryCount times, ascending by byte value:
//	  symbol = uint8
//	  count  = uint32
//	padLength  = uint8 (0-7), zero bits appended to the last packed octet
//	packedBits = remainder, codewords packed most significant bit first
//
// The frequency table is authoritative: the decoder rebuilds the tree from it rather than from the data.
// An empty input is stored as entryCount 0, padLength 0 and no packed bits.
const (
	entryCountSize = 4
	entrySize      = 1 + 4
	padLengthSize  = 1
	maxPadLength   = 7
)

// Container is the parsed form of a compressed buffer.
type Container struct {
	Histogram Histogram
	Padding   uint8
	Packed    []byte
}

// BitString returns the packed bits of c with the padding stripped.
func (c *Container) BitString() BitString {
	return BitString{Packed: c.Packed, BitLength: len(c.Packed)*8 - int(c.Padding)}
}

// MarshalBinary serializes c.  It never fails.
func (c *Container) MarshalBinary() ([]byte, error) {
	symbols := c.Histogram.Symbols()
	out := make([]byte, 0, entryCountSize+len(symbols)*entrySize+padLengthSize+len(c.Packed))

	out = binary.BigEndian.AppendUint32(out, uint32(len(symbols)))
	for _, symbol := range symbols {
		out = append(out, symbol)
		out = binary.BigEndian.AppendUint32(out, c.Histogram[symbol])
	}
	out = append(out, c.Padding)
	out = append(out, c.Packed...)
	return out, nil
}

// UnmarshalBinary replaces c with the container parsed from data.
func (c *Container) UnmarshalBinary(data []byte) error {
	parsed, err := ParseContainer(data)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}

// ParseContainer parses the container header and frames the packed bits.  The returned container's Packed
// aliases data.  It fails with a FormatError if the header is truncated or out of range; whether the packed
// bits agree with the histogram is checked by Decompress.
func ParseContainer(data []byte) (*Container, error) {
	if len(data) < entryCountSize {
		return nil, formatErrorf(FormatTruncated, "entry_count", "%d bytes", len(data))
	}
	entryCount := binary.BigEndian.Uint32(data)
	if entryCount > totalSymbols {
		return nil, formatErrorf(FormatInvalid, "entry_count", "%d entries", entryCount)
	}
	rest := data[entryCountSize:]

	c := &Container{}
	if need := int(entryCount) * entrySize; len(rest) < need {
		return nil, formatErrorf(FormatTruncated, "entries", "%d entries declared, %d bytes present",
			entryCount, len(rest))
	}
	for i := 0; i < int(entryCount); i++ {
		symbol, count := rest[0], binary.BigEndian.Uint32(rest[1:entrySize])
		rest = rest[entrySize:]

		switch {
		case count == 0:
			return nil, formatErrorf(FormatInvalid, "entries", "zero count for byte %#02x", symbol)
		case c.Histogram[symbol] != 0:
			return nil, formatErrorf(FormatInvalid, "entries", "duplicate entry for byte %#02x", symbol)
		}
		c.Histogram[symbol] = count
	}

	if len(rest) < padLengthSize {
		return nil, formatErrorf(FormatTruncated, "pad_length", "")
	}
	c.Padding = rest[0]
	c.Packed = rest[padLengthSize:]

	switch {
	case c.Padding > maxPadLength:
		return nil, formatErrorf(FormatInvalid, "pad_length", "%d", c.Padding)
	case c.Padding != 0 && len(c.Packed) == 0:
		return nil, formatErrorf(FormatInvalid, "pad_length", "%d with no packed bits", c.Padding)
	case entryCount == 0 && c.Padding != 0:
		return nil, formatErrorf(FormatInvalid, "pad_length", "%d with no entries", c.Padding)
	case entryCount == 0 && len(c.Packed) != 0:
		return nil, formatErrorf(FormatTrailing, "entries", "%d packed bytes with no entries", len(c.Packed))
	}
	return c, nil
}

// Compress returns the container for input.
func Compress(input []byte) ([]byte, error) {
	if uint64(len(input)) > math.MaxUint32 {
		return nil, ErrInputTooLarge
	}

	c := &Container{Histogram: Analyze(input)}
	if len(input) == 0 {
		return c.MarshalBinary()
	}

	table, err := NewTable(BuildTree(c.Histogram))
	if err != nil {
		return nil, err
	}
	bs, err := Encode(table, input)
	if err != nil {
		return nil, err
	}

	c.Padding, c.Packed = bs.Padding(), bs.Packed
	return c.MarshalBinary()
}

// Decompress returns the data a container produced by Compress was made from.  Any inconsistency between the
// frequency table, the padding and the packed bits fails with a FormatError.
func Decompress(container []byte) ([]byte, error) {
	c, err := ParseContainer(container)
	if err != nil {
		return nil, err
	}
	if c.Histogram.Distinct() == 0 {
		return []byte{}, nil
	}

	table, err := NewTable(BuildTree(c.Histogram))
	if err != nil {
		return nil, err
	}

	bs := c.BitString()
	switch expected := table.EncodedBits(&c.Histogram); {
	case uint64(bs.BitLength) < expected:
		return nil, formatErrorf(FormatTruncated, "packed_bits", "%d bits present, entries imply %d",
			bs.BitLength, expected)
	case uint64(bs.BitLength) > expected:
		return nil, formatErrorf(FormatTrailing, "packed_bits", "%d bits present, entries imply %d",
			bs.BitLength, expected)
	}

	out, err := Decode(table, bs)
	if err != nil {
		return nil, err
	}
	if total := c.Histogram.Total(); uint64(len(out)) != total {
		return nil, formatErrorf(FormatMismatch, "packed_bits", "decoded %d bytes, entries imply %d",
			len(out), total)
	}
	return out, nil
}
