package layout

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toby1364/vm64asm/internal/diagnostics"
)

func noopCollaborators() Collaborators {
	return Collaborators{
		DecodeImage: func(string) ([]byte, error) { return nil, errors.New("not used") },
		ReadBytes:   func(string) ([]byte, error) { return nil, errors.New("not used") },
	}
}

func TestLink_LabelFixupAtZeroAlignment(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindLabel, Head: "start:", FilePath: "a.asm", Line: 1},
		{Kind: KindNeedsLabelFixup, Bytes: []byte{0x50, 0, 0, 0, 0}, Symbol: "start", FilePath: "a.asm", Line: 2},
	}
	diags := diagnostics.New()
	Link(&lines, "", 0, noopCollaborators(), diags)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []byte{0x50, 0x00, 0x00, 0x00, 0x00}, lines[1].Bytes)
}

func TestLink_LabelFixupAtNonzeroAlignment(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindLabel, Head: "start:", FilePath: "a.asm", Line: 1},
		{Kind: KindNeedsLabelFixup, Bytes: []byte{0x50, 0, 0, 0, 0}, Symbol: "start", FilePath: "a.asm", Line: 2},
	}
	diags := diagnostics.New()
	Link(&lines, "", 0x100, noopCollaborators(), diags)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []byte{0x50, 0x00, 0x00, 0x01, 0x00}, lines[1].Bytes)
}

func TestLink_UndefinedLabelIsRejected(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindNeedsLabelFixup, Bytes: []byte{0x50, 0, 0, 0, 0}, Symbol: "nowhere", FilePath: "a.asm", Line: 1},
	}
	diags := diagnostics.New()
	Link(&lines, "", 0, noopCollaborators(), diags)

	assert.True(t, diags.HasErrors())
	assert.Equal(t, diagnostics.KindSymbol, diags.Entries()[0].Kind())
}

func TestLink_DuplicateLabelIsRejected(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindLabel, Head: "start:", FilePath: "a.asm", Line: 1},
		{Kind: KindLabel, Head: "start:", FilePath: "a.asm", Line: 2},
	}
	diags := diagnostics.New()
	Link(&lines, "", 0, noopCollaborators(), diags)

	assert.True(t, diags.HasErrors())
}

func TestLink_DataPointerFixup(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindData, Bytes: []byte{1, 2, 3}, Operands: []string{"sprite"}, FilePath: "a.asm", Line: 1},
		{Kind: KindNeedsDataFixup, Bytes: []byte{0xA0, 0, 0, 0, 0, 9}, Symbol: "sprite", FilePath: "a.asm", Line: 2},
	}
	diags := diagnostics.New()
	Link(&lines, "", 0, noopCollaborators(), diags)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []byte{0xA0, 0x00, 0x00, 0x00, 0x00, 9}, lines[1].Bytes)
}

func TestLink_ImagePointerMaterializesAppendedDataLine(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindImagePointer, Head: "#image", Operands: []string{"sprite", "sprite.bmp"}, FilePath: "a.asm", Line: 1},
	}
	collab := Collaborators{
		DecodeImage: func(path string) ([]byte, error) { return []byte{1, 2, 3, 4}, nil },
		ReadBytes:   func(path string) ([]byte, error) { return nil, errors.New("not used") },
	}
	diags := diagnostics.New()
	image := Link(&lines, "/base", 0, collab, diags)

	assert.False(t, diags.HasErrors())
	assert.Len(t, lines, 2)
	assert.Equal(t, KindData, lines[1].Kind)
	assert.Equal(t, []byte{1, 2, 3, 4}, lines[1].Bytes)
	assert.Equal(t, []byte{1, 2, 3, 4}, image)
}

func TestLink_ImageIOErrorIsRecorded(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindImagePointer, Operands: []string{"sprite", "missing.bmp"}, FilePath: "a.asm", Line: 1},
	}
	diags := diagnostics.New()
	Link(&lines, "/base", 0, noopCollaborators(), diags)

	assert.True(t, diags.HasErrors())
	assert.Equal(t, diagnostics.KindIO, diags.Entries()[0].Kind())
}

func TestListing_SkipsPointerLinesAndElidesDataMiddle(t *testing.T) {
	lines := []EncodedLine{
		{Kind: KindLabel, Head: "start:", FilePath: "a.asm", Line: 1},
		{Kind: KindImagePointer, Head: "#image", Operands: []string{"s", "s.bmp"}, FilePath: "a.asm", Line: 2},
		{Kind: KindData, Bytes: []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, Head: "#image", Operands: []string{"s", "s.bmp"}, FilePath: "a.asm", Line: 2},
		{Kind: KindInstruction, Bytes: []byte{0x00}, Head: "nop", FilePath: "a.asm", Line: 3},
	}
	out := Listing(lines, 0)

	assert.Equal(t, 2, strings.Count(out, "0x"))
	assert.Contains(t, out, ". . . ")
	assert.Contains(t, out, "nop")
	assert.Contains(t, out, "a.asm:3")
}
