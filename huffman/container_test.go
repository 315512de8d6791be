// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman_test

import (
	"bytes"
	"testing"

	"github.com/Sremoyee/Huffman-File-Zipper/huffman"
)

// With counts a=2 b=1 c=1 the codes are a=0 b=10 c=11, six bits in all.
var abcHeader = []byte{
	0, 0, 0, 3,
	'a', 0, 0, 0, 2,
	'b', 0, 0, 0, 1,
	'c', 0, 0, 0, 1,
}

func withTail(header []byte, tail ...byte) []byte {
	return append(append([]byte{}, header...), tail...)
}

func TestContainerLayout(t *testing.T) {
	container := mustCompress(t, []byte("abca"))
	// a b c a = 0 10 11 0, padded with two zero bits.
	want := withTail(abcHeader, 2, 0x58)
	if !bytes.Equal(container, want) {
		t.Fatalf("container:\n got %s\nwant %s", showBinaryOctets(container), showBinaryOctets(want))
	}

	c, err := huffman.ParseContainer(container)
	if err != nil {
		t.Fatalf("ParseContainer: %v", err)
	}
	if c.Histogram['a'] != 2 || c.Histogram['b'] != 1 || c.Histogram['c'] != 1 || c.Histogram.Distinct() != 3 {
		t.Fatalf("unexpected histogram %v", c.Histogram.Symbols())
	}

	var again huffman.Container
	if err := again.UnmarshalBinary(container); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	remarshaled, err := again.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if !bytes.Equal(remarshaled, container) {
		t.Fatalf("remarshaled container differs:\n got %s\nwant %s",
			showBinaryOctets(remarshaled), showBinaryOctets(container))
	}
}

func TestEntriesInAnyOrder(t *testing.T) {
	// The decoder rebuilds the histogram, so entry order in the file does not matter.
	container := []byte{
		0, 0, 0, 3,
		'c', 0, 0, 0, 1,
		'a', 0, 0, 0, 2,
		'b', 0, 0, 0, 1,
		2, 0x58,
	}
	dataOut, err := huffman.Decompress(container)
	if err != nil {
		t.Fatalf("Decompress: %v", err)
	}
	if string(dataOut) != "abca" {
		t.Fatalf("got %q, want %q", dataOut, "abca")
	}
}

func TestMalformedContainers(t *testing.T) {
	cases := []struct {
		name      string
		container []byte
		how       huffman.FormatErrorHow
	}{
		{"no entry count", []byte{0, 0, 0}, huffman.FormatTruncated},
		{"too many entries", []byte{0, 0, 1, 1, 0}, huffman.FormatInvalid},
		{"short entries", abcHeader[:12], huffman.FormatTruncated},
		{"no pad length", abcHeader, huffman.FormatTruncated},
		{"pad length too large", withTail(abcHeader, 8, 0x58), huffman.FormatInvalid},
		{"padding without bits", withTail(abcHeader, 2), huffman.FormatInvalid},
		{"zero count", []byte{0, 0, 0, 1, 'a', 0, 0, 0, 0, 0}, huffman.FormatInvalid},
		{"duplicate entry", []byte{0, 0, 0, 2, 'a', 0, 0, 0, 1, 'a', 0, 0, 0, 1, 6, 0}, huffman.FormatInvalid},
		{"empty with padding", []byte{0, 0, 0, 0, 3}, huffman.FormatInvalid},
		{"empty with bits", []byte{0, 0, 0, 0, 0, 0xff}, huffman.FormatTrailing},
		{"bits missing", withTail(abcHeader, 0), huffman.FormatTruncated},
		{"extra octet", withTail(abcHeader, 2, 0x58, 0x00), huffman.FormatTrailing},
		{"wrong padding", withTail(abcHeader, 3, 0x58), huffman.FormatTruncated},
		{"nonzero padding bits", withTail(abcHeader, 2, 0x59), huffman.FormatInvalid},
		// 0 10 10 1: the final bit starts a codeword that never finishes.
		{"partial codeword", withTail(abcHeader, 2, 0x54), huffman.FormatMismatch},
		// 10 10 10: three whole codewords where the entries call for four.
		{"too few symbols", withTail(abcHeader, 2, 0xa8), huffman.FormatMismatch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dataOut, err := huffman.Decompress(tc.container)
			if err == nil {
				t.Fatalf("expected an error, decompressed %q", dataOut)
			}
			assertFormatError(t, err, tc.how)
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	_, err := huffman.Decompress([]byte{0, 0})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if got, want := err.Error(), "huffman: truncated entry_count: 2 bytes"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
