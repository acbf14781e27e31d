package encode

import "github.com/toby1364/vm64asm/internal/operand"

func encodeNop(args []operand.Operand) (Result, error) {
	return Result{Bytes: []byte{0x00}}, nil
}

// encodeMov covers the 2/3/4-operand forms of mov (spec.md's register move,
// memory load/store, and offset load/store arms).
func encodeMov(args []operand.Operand) (Result, error) {
	switch len(args) {
	case 2:
		return movReg(args, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06)
	case 3:
		return movMem3(args, 0x07, 0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E)
	case 4:
		return movMem4(args, 0x17, 0x18, 0x19, 0x1A)
	default:
		return Result{}, errWrongArgCount
	}
}

func encodeMva(args []operand.Operand) (Result, error) {
	switch len(args) {
	case 3:
		return movMem3(args, 0x0F, 0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16)
	case 4:
		return movMem4(args, 0x1B, 0x1C, 0x1D, 0x1E)
	default:
		return Result{}, errWrongArgCount
	}
}

func encodeMvd(args []operand.Operand) (Result, error) {
	switch len(args) {
	case 3:
		return movMem3(args, 0x1F, 0x20, 0x21, 0x22, 0x23, 0x24, 0x25, 0x26)
	case 4:
		return movMem4(args, 0x27, 0x28, 0x29, 0x2A)
	default:
		return Result{}, errWrongArgCount
	}
}

// movReg handles "mov dest, src" where dest/src are registers or a literal
// source. opUR/opUF/opFU/opFF select dest-reg,src-reg pairs; opULit/opFLit
// select a literal source into an int/float dest respectively.
func movReg(args []operand.Operand, opUR, opFF, opFU, opUF, opULit, opFLit byte) (Result, error) {
	dest := args[0]
	var float bool
	switch dest.Kind {
	case operand.IntReg:
	case operand.FloatReg:
		float = true
	case operand.Literal:
		return Result{}, expect("floating point register or register", dest)
	default:
		return Result{}, expect("floating point register or register", dest)
	}

	src := args[1]
	switch src.Kind {
	case operand.IntReg:
		if float {
			return Result{Bytes: []byte{opFU, dest.Reg, src.Reg}}, nil
		}
		return Result{Bytes: []byte{opUR, dest.Reg, src.Reg}}, nil
	case operand.FloatReg:
		if float {
			return Result{Bytes: []byte{opFF, dest.Reg, src.Reg}}, nil
		}
		return Result{Bytes: []byte{opUF, dest.Reg, src.Reg}}, nil
	case operand.Literal:
		if float {
			b := append([]byte{opFLit, dest.Reg}, src.Bytes()...)
			return Result{Bytes: b}, nil
		}
		b := append([]byte{opULit, dest.Reg}, src.Bytes()...)
		return Result{Bytes: b}, nil
	default:
		return Result{}, expect("floating point register, literal, or register", src)
	}
}

// movMem3 handles the three-operand memory forms shared by mov/mva/mvd:
// load-from-address, store-to-address, and register-indexed copy, each in
// an int and a float flavor.
func movMem3(args []operand.Operand, opLoadU, opLoadF, opStoreU, opStoreF, opCopyUU, opCopyUF, opCopyFromLitU, opCopyFromLitF byte) (Result, error) {
	a, b, c := args[0], args[1], args[2]

	switch {
	case a.Kind == operand.IntReg && b.Kind == operand.Literal && c.Kind == operand.Literal:
		bytes := append([]byte{opLoadU, a.Reg}, shortLen(b))
		bytes = append(bytes, longField(c)...)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.FloatReg && b.Kind == operand.Literal && c.Kind == operand.Literal:
		bytes := append([]byte{opLoadF, a.Reg}, shortLen(b))
		bytes = append(bytes, longField(c)...)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.Literal && b.Kind == operand.IntReg && c.Kind == operand.Literal:
		bytes := append([]byte{opStoreU}, longField(a)...)
		bytes = append(bytes, shortLen(c), b.Reg)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.Literal && b.Kind == operand.FloatReg && c.Kind == operand.Literal:
		bytes := append([]byte{opStoreF}, longField(a)...)
		bytes = append(bytes, shortLen(c), b.Reg)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.IntReg && b.Kind == operand.IntReg && c.Kind == operand.Literal:
		bytes := append([]byte{opCopyUU, a.Reg}, shortLen(c), b.Reg)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.IntReg && b.Kind == operand.FloatReg && c.Kind == operand.Literal:
		bytes := append([]byte{opCopyUF, a.Reg}, shortLen(c), b.Reg)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.IntReg && b.Kind == operand.Literal && c.Kind == operand.IntReg:
		bytes := append([]byte{opCopyFromLitU, a.Reg}, shortLen(b), c.Reg)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.FloatReg && b.Kind == operand.Literal && c.Kind == operand.IntReg:
		bytes := append([]byte{opCopyFromLitF, a.Reg}, shortLen(b), c.Reg)
		return Result{Bytes: bytes}, nil

	default:
		return Result{}, errBadArrangement
	}
}

// movMem4 handles the four-operand offset-indexed forms shared by
// mov/mva/mvd.
func movMem4(args []operand.Operand, opOffU, opOffF, opIdxU, opIdxF byte) (Result, error) {
	a, b, c, d := args[0], args[1], args[2], args[3]

	switch {
	case a.Kind == operand.Literal && b.Kind == operand.IntReg && c.Kind == operand.IntReg && d.Kind == operand.Literal:
		bytes := append([]byte{opOffU, b.Reg}, shortLen(d), c.Reg)
		bytes = append(bytes, longField(a)...)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.Literal && b.Kind == operand.IntReg && c.Kind == operand.FloatReg && d.Kind == operand.Literal:
		bytes := append([]byte{opOffF, b.Reg}, shortLen(d), c.Reg)
		bytes = append(bytes, longField(a)...)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.IntReg && b.Kind == operand.Literal && c.Kind == operand.Literal && d.Kind == operand.IntReg:
		bytes := append([]byte{opIdxU, a.Reg}, shortLen(b), d.Reg)
		bytes = append(bytes, longField(c)...)
		return Result{Bytes: bytes}, nil

	case a.Kind == operand.FloatReg && b.Kind == operand.Literal && c.Kind == operand.Literal && d.Kind == operand.IntReg:
		bytes := append([]byte{opIdxF, a.Reg}, shortLen(b), d.Reg)
		bytes = append(bytes, longField(c)...)
		return Result{Bytes: bytes}, nil

	default:
		return Result{}, errBadArrangement
	}
}
