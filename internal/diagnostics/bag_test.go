package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBag_EmptyByDefault(t *testing.T) {
	b := New()
	assert.False(t, b.HasErrors())
	assert.Equal(t, 0, b.Count())
	assert.Empty(t, b.Entries())
}

func TestBag_RecordsEachKind(t *testing.T) {
	b := New()
	b.Parse(Loc("a.asm", 1), "invalid hex literal")
	b.Shape(Loc("a.asm", 2), "invalid number of arguments")
	b.Symbol(Loc("a.asm", 3), "undefined label 'loop'")
	b.IO(Loc("a.asm", 4), "couldn't open sprite.bmp")

	assert.True(t, b.HasErrors())
	assert.Equal(t, 4, b.Count())

	kinds := make([]Kind, 0, 4)
	for _, e := range b.Entries() {
		kinds = append(kinds, e.Kind())
	}
	assert.Equal(t, []Kind{KindParse, KindShape, KindSymbol, KindIO}, kinds)
}

func TestEntry_StringIncludesLocationAndLine(t *testing.T) {
	b := New()
	e := b.Parse(Loc("prog.asm", 7), "Invalid hex literal.")
	e.WithLine("mov r0, &zz")

	s := e.String()
	assert.Contains(t, s, "prog.asm:7")
	assert.Contains(t, s, "Invalid hex literal.")
	assert.Contains(t, s, "mov r0, &zz")
}

func TestEntries_ReturnsACopy(t *testing.T) {
	b := New()
	b.Parse(Loc("a.asm", 1), "x")

	entries := b.Entries()
	entries[0] = nil

	assert.NotNil(t, b.Entries()[0])
}
