package assemble

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toby1364/vm64asm/internal/cfgfile"
	"github.com/toby1364/vm64asm/internal/diagnostics"
)

func writeFile(t *testing.T, dir, name, contents string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644))
}

func TestRun_EndToEndLabelAndJump(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog.asm", "start:\njmp start\n")

	opts := Options{InputPath: dir, OutputPath: filepath.Join(dir, "out.bin")}
	diags := diagnostics.New()
	result := Run(opts, diags)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []byte{0x50, 0x00, 0x00, 0x00, 0x00}, result.Image)
}

func TestRun_EndToEndWithAlignment(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog.asm", "start:\njmp start\n")

	opts := Options{InputPath: dir, OutputPath: filepath.Join(dir, "out.bin"), Align: 0x100}
	diags := diagnostics.New()
	result := Run(opts, diags)

	assert.False(t, diags.HasErrors())
	assert.Equal(t, []byte{0x50, 0x00, 0x00, 0x01, 0x00}, result.Image)
}

func TestRun_UndefinedLabelRecordsDiagnostic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog.asm", "jmp nowhere\n")

	opts := Options{InputPath: dir, OutputPath: filepath.Join(dir, "out.bin")}
	diags := diagnostics.New()
	Run(opts, diags)

	assert.True(t, diags.HasErrors())
	assert.Equal(t, diagnostics.KindSymbol, diags.Entries()[0].Kind())
}

func TestRun_UnknownInstructionRecordsParseDiagnostic(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog.asm", "frobnicate r0\n")

	opts := Options{InputPath: dir, OutputPath: filepath.Join(dir, "out.bin")}
	diags := diagnostics.New()
	Run(opts, diags)

	assert.True(t, diags.HasErrors())
	assert.Equal(t, diagnostics.KindParse, diags.Entries()[0].Kind())
}

func TestRun_ProducesListingWhenRequested(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prog.asm", "nop\nhlt\n")

	opts := Options{InputPath: dir, OutputPath: filepath.Join(dir, "out.bin"), InterPath: filepath.Join(dir, "out.lst")}
	diags := diagnostics.New()
	result := Run(opts, diags)

	assert.False(t, diags.HasErrors())
	assert.Contains(t, result.Listing, "nop")
	assert.Contains(t, result.Listing, "hlt")
}

func TestResolveOptions_RequiresInputAndOutput(t *testing.T) {
	_, err := ResolveOptions(cfgfile.Flags{})
	assert.Error(t, err)
}

func TestResolveOptions_ParsesHexAlignment(t *testing.T) {
	in, out := "src", "out.bin"
	align := "100"
	opts, err := ResolveOptions(cfgfile.Flags{Input: &in, Output: &out, Align: &align})
	assert.NoError(t, err)
	assert.Equal(t, uint64(0x100), opts.Align)
}

func TestResolveOptions_CfgFileOverridesOnlyWhatItSpecifies(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "build.cfg")
	writeFile(t, dir, "build.cfg", "-o other.bin")

	in, out := "src", "out.bin"
	opts, err := ResolveOptions(cfgfile.Flags{Input: &in, Output: &out, Cfg: &cfgPath})
	assert.NoError(t, err)
	assert.Equal(t, "src", opts.InputPath)
	assert.Equal(t, "other.bin", opts.OutputPath)
}
