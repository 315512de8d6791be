// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

package huffman

import (
	"errors"
	"fmt"
)

var (
	ErrInputTooLarge = errors.New("huffman: input too large for 32-bit symbol counts")
	ErrCodeTooLong   = errors.New("huffman: codeword longer than 64 bits")
)

// FormatErrorHow describes whether a malformed container ran out of bytes, carried bytes past its declared
// end, held a value outside its field's range, or held values that are each valid but inconsistent with one
// another.
type FormatErrorHow int

const (
	FormatErrorUnknown FormatErrorHow = iota
	FormatTruncated
	FormatTrailing
	FormatInvalid
	FormatMismatch
)

// FormatError describes a container that cannot be decompressed.  Field names the container field the
// problem was found in; Detail may be empty.
type FormatError struct {
	How    FormatErrorHow
	Field  string
	Detail string
}

func formatErrorf(how FormatErrorHow, field string, detailFmt string, detailArgs ...interface{}) *FormatError {
	return &FormatError{How: how, Field: field, Detail: fmt.Sprintf(detailFmt, detailArgs...)}
}

func (fe *FormatError) Error() string {
	var str string
	switch fe.How {
	case FormatErrorUnknown:
		str = "??? "
	case FormatTruncated:
		str = "truncated "
	case FormatTrailing:
		str = "trailing data after "
	case FormatInvalid:
		str = "invalid "
	case FormatMismatch:
		str = "inconsistent "
	}

	str = "huffman: " + str + fe.Field
	if fe.Detail != "" {
		str += ": " + fe.Detail
	}
	return str
}
