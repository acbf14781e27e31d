// Package layout implements the layout/linker pass: a single forward scan
// that assigns every encoded line an address, registers labels and data
// pointers, materializes "#image"/"#bytes" directives into appended data
// blocks, and a subsequent back-patch scan that writes resolved symbol
// addresses into the byte offsets the encoder reserved for them.
package layout

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/toby1364/vm64asm/internal/diagnostics"
)

// Kind discriminates an EncodedLine the way the reference's Control enum
// does (spec.md §4.2/§9).
type Kind int

const (
	KindInstruction Kind = iota
	KindLabel
	KindNeedsLabelFixup
	KindNeedsDataFixup
	KindData
	KindDataPointer  // "#bytes name path" before its bytes are materialized.
	KindImagePointer // "#image name path" before its pixels are decoded.
	KindNone
)

// EncodedLine is the tagged record the encoder produces for one source
// line and the layout pass consumes and mutates in place.
type EncodedLine struct {
	Kind     Kind
	Bytes    []byte
	Head     string
	Operands []string
	FilePath string
	Line     int
	// Symbol is the label or data-pointer name a NeedsLabelFixup/
	// NeedsDataFixup line resolves against.
	Symbol string
}

func (l EncodedLine) loc() diagnostics.Location { return diagnostics.Loc(l.FilePath, l.Line) }

// Collaborators supplies the I/O the layout pass needs but does not
// perform itself: decoding a referenced image into RGB8 bytes, and
// reading a referenced file's raw bytes for the "#bytes" directive.
type Collaborators struct {
	DecodeImage func(path string) ([]byte, error)
	ReadBytes   func(path string) ([]byte, error)
}

// Link runs the forward scan and the back-patch scan over lines, given the
// base directory image/bytes paths are relative to and the base address
// alignment. It mutates lines in place (appending materialized Data lines
// and rewriting fixup placeholders) and returns the final concatenated
// image. Errors are recorded into diags; Link always returns a byte slice,
// but callers should treat it as unusable if diags.HasErrors().
func Link(lines *[]EncodedLine, baseDir string, align uint64, collab Collaborators, diags *diagnostics.Bag) []byte {
	labels := make(map[string]uint64)
	dataPointers := make(map[string]uint64)

	cursor := align
	for i := 0; i < len(*lines); i++ {
		line := (*lines)[i]

		switch line.Kind {
		case KindLabel:
			name := strings.TrimSuffix(line.Head, ":")
			if _, dup := labels[name]; dup {
				diags.Symbol(line.loc(), fmt.Sprintf("duplicate label %q", name))
			}
			labels[name] = cursor

		case KindImagePointer:
			path := filepath.Join(baseDir, line.Operands[1])
			bytes, err := collab.DecodeImage(path)
			if err != nil {
				diags.IO(line.loc(), fmt.Sprintf("couldn't open %s", line.Operands[1]))
				break
			}
			*lines = append(*lines, EncodedLine{
				Kind:     KindData,
				Bytes:    bytes,
				Head:     line.Head,
				Operands: line.Operands,
				FilePath: line.FilePath,
				Line:     line.Line,
			})

		case KindDataPointer:
			path := filepath.Join(baseDir, line.Operands[1])
			bytes, err := collab.ReadBytes(path)
			if err != nil {
				diags.IO(line.loc(), fmt.Sprintf("couldn't open %s", line.Operands[1]))
				break
			}
			*lines = append(*lines, EncodedLine{
				Kind:     KindData,
				Bytes:    bytes,
				Head:     line.Head,
				Operands: line.Operands,
				FilePath: line.FilePath,
				Line:     line.Line,
			})

		case KindData:
			name := line.Operands[0]
			if _, dup := dataPointers[name]; dup {
				diags.Symbol(line.loc(), fmt.Sprintf("duplicate data pointer %q", name))
			}
			dataPointers[name] = cursor
		}

		cursor += uint64(len(line.Bytes))
	}

	for i := range *lines {
		line := &(*lines)[i]
		switch line.Kind {
		case KindNeedsLabelFixup:
			addr, ok := labels[line.Symbol]
			if !ok {
				diags.Symbol(line.loc(), fmt.Sprintf("undefined label %q", line.Symbol))
				continue
			}
			patchLow4(line.Bytes, addr)

		case KindNeedsDataFixup:
			addr, ok := dataPointers[line.Symbol]
			if !ok {
				diags.Symbol(line.loc(), fmt.Sprintf("undefined data pointer %q", line.Symbol))
				continue
			}
			var full [8]byte
			binary.BigEndian.PutUint64(full[:], addr)
			copy(line.Bytes[1:5], full[4:8])
		}
	}

	var image []byte
	for _, line := range *lines {
		image = append(image, line.Bytes...)
	}
	return image
}

// patchLow4 overwrites the final 4 bytes of b with the low 4 bytes of
// addr's big-endian 8-byte form.
func patchLow4(b []byte, addr uint64) {
	var full [8]byte
	binary.BigEndian.PutUint64(full[:], addr)
	copy(b[len(b)-4:], full[4:8])
}
