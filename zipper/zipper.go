// Copyright © 2015 Drake Wilson.  Copying, distribution, and modification of this software is governed by
// the MIT-style license in the file ../LICENSE.md.

/*
Package zipper compresses and decompresses whole files with the huffman package, and reports how much space
was saved.
*/
package zipper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/op/go-logging"

	"github.com/Sremoyee/Huffman-File-Zipper/huffman"
)

var log = logging.MustGetLogger("zipper")

// InputMissingError reports that the file to be read does not exist.
type InputMissingError struct {
	Path string
}

func (ime *InputMissingError) Error() string {
	return "input file '" + ime.Path + "' does not exist"
}

// Action names the direction of a transform.
type Action string

const (
	ActionCompress   Action = "compress"
	ActionDecompress Action = "decompress"
)

// Report describes one completed transform.
type Report struct {
	Action     Action
	Input      string
	Output     string
	InputSize  int64
	OutputSize int64
}

// Ratio returns the compressed size divided by the original size, or 0 if the original was empty.
func (r *Report) Ratio() float64 {
	original, compressed := r.InputSize, r.OutputSize
	if r.Action == ActionDecompress {
		original, compressed = r.OutputSize, r.InputSize
	}
	if original == 0 {
		return 0
	}
	return float64(compressed) / float64(original)
}

func (r *Report) String() string {
	original, compressed := r.InputSize, r.OutputSize
	if r.Action == ActionDecompress {
		original, compressed = r.OutputSize, r.InputSize
	}
	return fmt.Sprintf("%s complete: '%s' -> '%s'\n"+
		"Original size: %d bytes\n"+
		"Compressed size: %d bytes\n"+
		"Compression ratio: %.2f\n",
		r.Action, r.Input, r.Output, original, compressed, r.Ratio())
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &InputMissingError{Path: path}
	} else if err != nil {
		return nil, fmt.Errorf("reading '%s': %w", path, err)
	}
	return data, nil
}

func transform(action Action, inPath, outPath string, xform func([]byte) ([]byte, error)) (*Report, error) {
	input, err := readInput(inPath)
	if err != nil {
		return nil, err
	}

	output, err := xform(input)
	if err != nil {
		return nil, fmt.Errorf("%s '%s': %w", action, inPath, err)
	}

	if err = os.WriteFile(outPath, output, 0o644); err != nil {
		return nil, fmt.Errorf("writing '%s': %w", outPath, err)
	}

	report := &Report{
		Action:     action,
		Input:      inPath,
		Output:     outPath,
		InputSize:  int64(len(input)),
		OutputSize: int64(len(output)),
	}
	log.Infof("%s '%s' -> '%s': %d -> %d bytes", action, inPath, outPath, report.InputSize, report.OutputSize)
	return report, nil
}

// CompressFile compresses the file at inPath into a new file at outPath.
func CompressFile(inPath, outPath string) (*Report, error) {
	return transform(ActionCompress, inPath, outPath, func(input []byte) ([]byte, error) {
		if log.IsEnabledFor(logging.DEBUG) {
			h := huffman.Analyze(input)
			log.Debugf("'%s': %d bytes, %d distinct values", inPath, len(input), h.Distinct())
		}
		return huffman.Compress(input)
	})
}

// DecompressFile decompresses the file at inPath, which must have been written by CompressFile, into a new
// file at outPath.
func DecompressFile(inPath, outPath string) (*Report, error) {
	return transform(ActionDecompress, inPath, outPath, huffman.Decompress)
}

// TableFor returns the code table that CompressFile would use for the file at path.  An empty file yields an
// empty table.
func TableFor(path string) (*huffman.Table, error) {
	input, err := readInput(path)
	if err != nil {
		return nil, err
	}

	h := huffman.Analyze(input)
	table, err := huffman.NewTable(huffman.BuildTree(h))
	if err != nil {
		return nil, fmt.Errorf("building code table for '%s': %w", path, err)
	}
	log.Debugf("'%s': %d symbols, longest codeword %d bits, %d encoded bits",
		path, table.Len(), table.MaxLen(), table.EncodedBits(&h))
	return table, nil
}
