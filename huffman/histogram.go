// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

// Histogram maps each byte value to its number of occurrences.  Bytes with a zero count are absent.
type Histogram [totalSymbols]uint32

// Analyze counts the occurrences of each byte value in data.  Counts wrap for inputs of 4 GiB or more;
// Compress rejects those before calling Analyze.
func Analyze(data []byte) Histogram {
	var h Histogram
	for _, b := range data {
		h[b]++
	}
	return h
}

// Distinct returns the number of byte values with a nonzero count.
func (h *Histogram) Distinct() int {
	n := 0
	for _, count := range h {
		if count > 0 {
			n++
		}
	}
	return n
}

// Total returns the sum of all counts, which is the length of the data h was built from.
func (h *Histogram) Total() uint64 {
	var total uint64
	for _, count := range h {
		total += uint64(count)
	}
	return total
}

// Symbols returns the byte values with a nonzero count, in ascending order.
func (h *Histogram) Symbols() []byte {
	symbols := make([]byte, 0, totalSymbols)
	for i, count := range h {
		if count > 0 {
			symbols = append(symbols, byte(i))
		}
	}
	return symbols
}
