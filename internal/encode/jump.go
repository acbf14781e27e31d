package encode

import "github.com/toby1364/vm64asm/internal/operand"

var placeholder4 = []byte{0, 0, 0, 0}

// encodeJmp: Ureg -> [0x51,reg]; Liter -> [0x50]+addr; Symbol -> [0x50]+
// placeholder, deferred to the layout pass.
func encodeJmp(args []operand.Operand) (Result, error) {
	if len(args) != 1 {
		return Result{}, errWrongArgCount
	}
	switch a := args[0]; a.Kind {
	case operand.IntReg:
		return Result{Bytes: []byte{0x51, a.Reg}}, nil
	case operand.Literal:
		return Result{Bytes: append([]byte{0x50}, longField(a)...)}, nil
	case operand.Symbol:
		return Result{Bytes: append([]byte{0x50}, placeholder4...), Control: NeedsLabelFixup, Symbol: a.Name}, nil
	default:
		return Result{}, expect("label or register", a)
	}
}

// compareJumpEncoder builds jlg/jpe/jne: two registers of a matching
// family, then a register, literal address, or label target.
func compareJumpEncoder(opRegInt, opRegFloat, opLitInt, opLitFloat byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		if len(args) != 3 {
			return Result{}, errWrongArgCount
		}
		reg0 := args[0]
		var float bool
		switch reg0.Kind {
		case operand.IntReg:
		case operand.FloatReg:
			float = true
		default:
			return Result{}, expect("floating point register or register", reg0)
		}

		reg1 := args[1]
		switch reg1.Kind {
		case operand.IntReg:
			if float {
				return Result{}, errMismatchedRegs
			}
		case operand.FloatReg:
			if !float {
				return Result{}, errMismatchedRegs
			}
		default:
			return Result{}, expect("floating point register or register", reg1)
		}

		target := args[2]
		switch target.Kind {
		case operand.IntReg:
			op := opRegInt
			if float {
				op = opRegFloat
			}
			return Result{Bytes: []byte{op, reg0.Reg, reg1.Reg, target.Reg}}, nil
		case operand.Literal:
			op := opLitInt
			if float {
				op = opLitFloat
			}
			b := append([]byte{op, reg0.Reg, reg1.Reg}, longField(target)...)
			return Result{Bytes: b}, nil
		case operand.Symbol:
			op := opLitInt
			if float {
				op = opLitFloat
			}
			b := append([]byte{op, reg0.Reg, reg1.Reg}, placeholder4...)
			return Result{Bytes: b, Control: NeedsLabelFixup, Symbol: target.Name}, nil
		default:
			return Result{}, expect("label or register", target)
		}
	}
}

var encodeJlg = compareJumpEncoder(0x53, 0x55, 0x52, 0x54)
var encodeJpe = compareJumpEncoder(0x57, 0x59, 0x56, 0x58)
var encodeJne = compareJumpEncoder(0x5B, 0x5D, 0x5A, 0x5C)

// conditionalJumpEncoder builds jpc/jnc: a single register, literal
// address, or label target, gated on the carry flag.
func conditionalJumpEncoder(opReg, opLit byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		if len(args) != 1 {
			return Result{}, errWrongArgCount
		}
		switch a := args[0]; a.Kind {
		case operand.IntReg:
			return Result{Bytes: []byte{opReg, a.Reg}}, nil
		case operand.Literal:
			return Result{Bytes: append([]byte{opLit}, longField(a)...)}, nil
		case operand.Symbol:
			return Result{Bytes: append([]byte{opLit}, placeholder4...), Control: NeedsLabelFixup, Symbol: a.Name}, nil
		default:
			return Result{}, expect("label or register", a)
		}
	}
}

var encodeJpc = conditionalJumpEncoder(0x5F, 0x5E)
var encodeJnc = conditionalJumpEncoder(0x61, 0x60)
