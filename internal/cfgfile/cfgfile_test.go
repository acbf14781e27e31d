package cfgfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strp(s string) *string { return &s }

func TestResolveArgs_ParsesAllFlags(t *testing.T) {
	f := ResolveArgs([]string{"-i", "src", "-o", "out.bin", "-align", "100"})
	assert.Equal(t, strp("src"), f.Input)
	assert.Equal(t, strp("out.bin"), f.Output)
	assert.Equal(t, strp("100"), f.Align)
	assert.Nil(t, f.Inter)
}

func TestTokenize_NormalizesSeparators(t *testing.T) {
	toks := Tokenize("-i src, -o out.bin\n-align, 100\r")
	assert.Equal(t, []string{"-i", "src", "-o", "out.bin", "-align", "100"}, toks)
}

func TestMerge_CfgOverridesOnlyFieldsItSpecifies(t *testing.T) {
	base := Flags{Input: strp("cli-src"), Output: strp("cli-out"), Align: strp("0")}
	cfg := Flags{Output: strp("cfg-out")}

	merged := Merge(base, cfg)

	assert.Equal(t, strp("cli-src"), merged.Input)
	assert.Equal(t, strp("cfg-out"), merged.Output)
	assert.Equal(t, strp("0"), merged.Align)
}
