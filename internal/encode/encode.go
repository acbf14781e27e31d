// Package encode implements the instruction encoder: given a mnemonic and
// its already-classified operands, it produces the provisional byte
// sequence for that instruction plus a control tag telling the layout pass
// whether the bytes are complete or still need a symbol address patched in.
package encode

import (
	"errors"
	"fmt"
	"strings"

	"github.com/toby1364/vm64asm/internal/operand"
)

// Control tags the kind of follow-up the layout pass owes an encoded line.
type Control int

const (
	// Complete indicates the bytes are final as emitted.
	Complete Control = iota
	// NeedsLabelFixup indicates the last 4 bytes are a placeholder reserved
	// for a label's resolved address, to be back-patched once every label
	// has been assigned an address.
	NeedsLabelFixup
	// NeedsDataFixup indicates bytes [1:5] are a placeholder reserved for a
	// data pointer's resolved address, back-patched from the data_pointers
	// table instead of labels.
	NeedsDataFixup
)

// Result is the outcome of successfully encoding one instruction line.
type Result struct {
	Bytes   []byte
	Control Control
	// Symbol names the referenced label or data pointer when Control is
	// NeedsLabelFixup or NeedsDataFixup; empty otherwise.
	Symbol string
}

var (
	errWrongArgCount  = errors.New("invalid number of arguments")
	errBadArrangement = errors.New("invalid argument arrangement")
	errMismatchedRegs = errors.New("mismatched register types")
	errUnknownInst    = errors.New("invalid instruction")
)

func expect(kind string, got operand.Operand) error {
	return fmt.Errorf("invalid argument, expected %s, got %s", kind, kindName(got.Kind))
}

func kindName(k operand.Kind) string {
	switch k {
	case operand.IntReg:
		return "register"
	case operand.FloatReg:
		return "floating point register"
	case operand.Literal:
		return "literal"
	default:
		return "label"
	}
}

// Encode dispatches on the lowercased mnemonic and returns its encoding.
// args must already be classified via the operand package.
func Encode(mnemonic string, args []operand.Operand) (Result, error) {
	fn, ok := dispatch[strings.ToLower(mnemonic)]
	if !ok {
		return Result{}, errUnknownInst
	}
	return fn(args)
}

type encodeFunc func(args []operand.Operand) (Result, error)

var dispatch = map[string]encodeFunc{
	"nop":     encodeNop,
	"mov":     encodeMov,
	"mva":     encodeMva,
	"mvd":     encodeMvd,
	"add":     arithEncoder(0x30, 0x31),
	"sub":     arithEncoder(0x32, 0x33),
	"mul":     arithEncoder(0x34, 0x35),
	"div":     arithEncoder(0x36, 0x37),
	"mod":     arithEncoder(0x38, 0x39),
	"shl":     intOnlyTriadEncoder(0x3A),
	"shr":     intOnlyTriadEncoder(0x3B),
	"and":     intOnlyTriadEncoder(0x3C),
	"or":      intOnlyTriadEncoder(0x3D),
	"xor":     intOnlyTriadEncoder(0x3E),
	"not":     encodeNot,
	"inc":     intRegUnaryEncoder(0x40),
	"dec":     intRegUnaryEncoder(0x41),
	"psh":     encodePsh,
	"pop":     encodePop,
	"adc":     intRegUnaryEncoder(0x46),
	"sbc":     intRegUnaryEncoder(0x47),
	"scf":     fixedEncoder(0x48),
	"ccf":     fixedEncoder(0x49),
	"jmp":     encodeJmp,
	"jlg":     encodeJlg,
	"jpe":     encodeJpe,
	"jne":     encodeJne,
	"jpc":     encodeJpc,
	"jnc":     encodeJnc,
	"hlt":     fixedEncoder(0x70),
	"wit":     encodeWit,
	"gst":     intRegUnaryEncoder(0x73),
	"gpc":     intRegUnaryEncoder(0x74),
	"syscall": fixedEncoder(0x80),
	"sysret":  fixedEncoder(0x81),
	"memcpy":  encodeMemcpy,
	"out":     encodeOut,
	"in":      encodeIn,
	"grapcpy": encodeGrapcpy,
	"db":      encodeDb,
}

func fixedEncoder(opcode byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		return Result{Bytes: []byte{opcode}}, nil
	}
}

// shortLen returns the 8-byte literal's low byte (slice[7:8]).
func shortLen(o operand.Operand) byte { return o.Value[7] }

// longField returns the 8-byte literal's low 4 bytes (slice[4:8]).
func longField(o operand.Operand) []byte { return append([]byte{}, o.Value[4:8]...) }

// field2 returns the 8-byte literal's bytes [6:8].
func field2(o operand.Operand) []byte { return append([]byte{}, o.Value[6:8]...) }

// field3 returns the 8-byte literal's bytes [5:8].
func field3(o operand.Operand) []byte { return append([]byte{}, o.Value[5:8]...) }
