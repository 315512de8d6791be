// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"fmt"
	"strings"
)

// Table maps between bytes and their Huffman codewords.  A Table can only be constructed from a tree, so its
// codewords are always prefix-free.
type Table struct {
	codes   [totalSymbols]Codeword
	symbols map[Codeword]byte
	maxLen  uint8
}

// NewTable derives the code table for the tree rooted at root by walking it depth first, appending a 0 bit
// for each left branch and a 1 bit for each right branch.  A lone leaf is given the codeword "0".  A nil
// root yields an empty table.
func NewTable(root *Node) (*Table, error) {
	t := &Table{symbols: make(map[Codeword]byte)}
	switch {
	case root == nil:
		return t, nil
	case root.IsLeaf():
		t.set(root.Symbol, Codeword{Bits: 0, Len: 1})
		return t, nil
	}

	if err := t.populate(root, Codeword{}); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) populate(node *Node, prefix Codeword) error {
	if node.IsLeaf() {
		t.set(node.Symbol, prefix)
		return nil
	}
	if prefix.Len == maxCodewordLen {
		return ErrCodeTooLong
	}

	if err := t.populate(node.Left, prefix.appendBit(0)); err != nil {
		return err
	}
	return t.populate(node.Right, prefix.appendBit(1))
}

func (t *Table) set(symbol byte, cw Codeword) {
	t.codes[symbol] = cw
	t.symbols[cw] = symbol
	if cw.Len > t.maxLen {
		t.maxLen = cw.Len
	}
}

// Code returns the codeword for symbol, or false if symbol has none.
func (t *Table) Code(symbol byte) (Codeword, bool) {
	cw := t.codes[symbol]
	return cw, cw.Len > 0
}

// Symbol returns the byte whose codeword is exactly cw, or false if there is none.
func (t *Table) Symbol(cw Codeword) (byte, bool) {
	symbol, ok := t.symbols[cw]
	return symbol, ok
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}

// MaxLen returns the length of the longest codeword, or 0 for an empty table.
func (t *Table) MaxLen() int {
	return int(t.maxLen)
}

// Symbols returns the bytes that have a codeword, in ascending order.
func (t *Table) Symbols() []byte {
	symbols := make([]byte, 0, len(t.symbols))
	for i, cw := range t.codes {
		if cw.Len > 0 {
			symbols = append(symbols, byte(i))
		}
	}
	return symbols
}

// EncodedBits returns the number of bits needed to encode data whose frequencies are h.  Every symbol of h
// must have a codeword in t.
func (t *Table) EncodedBits(h *Histogram) uint64 {
	var bits uint64
	for i, count := range h {
		bits += uint64(count) * uint64(t.codes[i].Len)
	}
	return bits
}

func (t *Table) String() string {
	var parts []string
	for _, symbol := range t.Symbols() {
		parts = append(parts, fmt.Sprintf("\t%02x: %v\n", symbol, t.codes[symbol]))
	}
	return "TABLE{\n" + strings.Join(parts, "") + "}"
}
