// Package operand classifies a single textual assembly operand token into
// one of this ISA's four variants (spec.md §4.1): integer register, float
// register, literal integer, or an unresolved symbol reference.
package operand

import (
	"encoding/binary"
	"errors"
	"strconv"
	"strings"
)

var (
	errInvalidRegisterIndex = errors.New("invalid register index")
	errInvalidHexLiteral    = errors.New("invalid hex literal")
	errLiteralDoesNotFit    = errors.New("literal does not fit in 64 bits")
)

// Kind identifies which of the four operand variants a token classified as.
type Kind int

const (
	IntReg Kind = iota
	FloatReg
	Literal
	Symbol
)

// Operand is a tagged union over the four variants. Only the field matching
// Kind is meaningful.
type Operand struct {
	Kind Kind

	Reg   uint8    // valid when Kind == IntReg or Kind == FloatReg.
	Value [8]byte  // valid when Kind == Literal — the value's big-endian 8-byte form.
	Name  string   // valid when Kind == Symbol — the token with underscores removed, for fixup lookup.
}

// Bytes returns the 8-byte big-endian form of a Literal operand.
func (o Operand) Bytes() []byte { return o.Value[:] }

// IntRegOperand builds an IntReg operand.
func IntRegOperand(n uint8) Operand { return Operand{Kind: IntReg, Reg: n} }

// FloatRegOperand builds a FloatReg operand.
func FloatRegOperand(n uint8) Operand { return Operand{Kind: FloatReg, Reg: n} }

// LiteralOperand builds a Literal operand from a u64 value.
func LiteralOperand(v uint64) Operand {
	var o Operand
	o.Kind = Literal
	binary.BigEndian.PutUint64(o.Value[:], v)
	return o
}

// SymbolOperand builds a Symbol operand — its 4 placeholder bytes are
// reserved by the encoder, not stored here.
func SymbolOperand(name string) Operand { return Operand{Kind: Symbol, Name: name} }

// Classify applies the rules of spec.md §4.1, in order, first match wins.
// Underscores are stripped from the token before any rule is applied; the
// sourceprep pass leaves them in place.
func Classify(token string) (Operand, error) {
	token = strings.ReplaceAll(token, "_", "")

	switch {
	case strings.HasPrefix(token, "r") && len(token) < 4:
		n, err := strconv.ParseUint(token[1:], 16, 8)
		if err != nil {
			return Operand{}, errInvalidRegisterIndex
		}
		return IntRegOperand(uint8(n)), nil

	case strings.HasPrefix(token, "f") && len(token) < 4:
		n, err := strconv.ParseUint(token[1:], 16, 8)
		if err != nil {
			return Operand{}, errInvalidRegisterIndex
		}
		return FloatRegOperand(uint8(n)), nil

	case strings.HasPrefix(token, "&"):
		n, err := strconv.ParseUint(token[1:], 16, 64)
		if err != nil {
			return Operand{}, errInvalidHexLiteral
		}
		return LiteralOperand(n), nil

	default:
		if n, err := strconv.ParseUint(token, 10, 64); err == nil {
			return LiteralOperand(n), nil
		}
		if looksNumeric(token) {
			// All-digit but didn't fit in 64 bits above.
			return Operand{}, errLiteralDoesNotFit
		}
		return SymbolOperand(token), nil
	}
}

// looksNumeric reports whether token is composed entirely of decimal digits
// (and therefore failed ParseUint(..., 64) only because it overflowed a
// u64, mirroring the reference's u128 overflow check in spec.md §4.1 rule 5).
func looksNumeric(token string) bool {
	if token == "" {
		return false
	}
	for _, c := range token {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
