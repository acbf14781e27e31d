package encode

import "github.com/toby1364/vm64asm/internal/operand"

// encodeWit: register -> [0x72,reg]; 2-byte immediate -> [0x71]+field2.
func encodeWit(args []operand.Operand) (Result, error) {
	if len(args) != 1 {
		return Result{}, errWrongArgCount
	}
	switch a := args[0]; a.Kind {
	case operand.IntReg:
		return Result{Bytes: []byte{0x72, a.Reg}}, nil
	case operand.Literal:
		return Result{Bytes: append([]byte{0x71}, field2(a)...)}, nil
	default:
		return Result{}, expect("literal or register", a)
	}
}

// encodeMemcpy: (Liter dst, Liter src, Liter len) -> 0x82 + src[4:8] +
// dst[4:8] + len[5:8]; (Ureg dst, Ureg src, Liter len) -> 0x83,src,dst +
// len[5:8]; (Ureg dst, Ureg src, Ureg len) -> 0x84,src,dst,len.
func encodeMemcpy(args []operand.Operand) (Result, error) {
	if len(args) != 3 {
		return Result{}, errWrongArgCount
	}
	dst, src, length := args[0], args[1], args[2]

	switch {
	case dst.Kind == operand.Literal && src.Kind == operand.Literal && length.Kind == operand.Literal:
		b := append([]byte{0x82}, longField(src)...)
		b = append(b, longField(dst)...)
		b = append(b, field3(length)...)
		return Result{Bytes: b}, nil

	case dst.Kind == operand.IntReg && src.Kind == operand.IntReg && length.Kind == operand.Literal:
		b := append([]byte{0x83, src.Reg, dst.Reg}, field3(length)...)
		return Result{Bytes: b}, nil

	case dst.Kind == operand.IntReg && src.Kind == operand.IntReg && length.Kind == operand.IntReg:
		return Result{Bytes: []byte{0x84, src.Reg, dst.Reg, length.Reg}}, nil

	default:
		return Result{}, errBadArrangement
	}
}

// ioEncoder builds out/in: a register, then either a register or a 2-byte
// immediate.
func ioEncoder(opLit, opReg byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		if len(args) != 2 {
			return Result{}, errWrongArgCount
		}
		if args[0].Kind != operand.IntReg {
			return Result{}, expect("register", args[0])
		}
		reg := args[0]

		switch a := args[1]; a.Kind {
		case operand.IntReg:
			return Result{Bytes: []byte{opReg, reg.Reg, a.Reg}}, nil
		case operand.Literal:
			b := append([]byte{opLit, reg.Reg}, field2(a)...)
			return Result{Bytes: b}, nil
		default:
			return Result{}, expect("literal or register", a)
		}
	}
}

var encodeOut = ioEncoder(0x90, 0x91)
var encodeIn = ioEncoder(0x92, 0x93)

// encodeGrapcpy: (Ureg dst, Liter src, Liter x, Liter y, Liter w, Liter h)
// -> 0xA0 + src[4:8] + dst + h[6:8] + w[6:8] + x[6:8] + y[6:8];
// (Ureg dst, Symbol src, ...) -> same shape with a 4-byte placeholder for
// src, tagged NeedsDataFixup; (all-register form) -> 0xA1 all bytes.
func encodeGrapcpy(args []operand.Operand) (Result, error) {
	if len(args) != 6 {
		return Result{}, errWrongArgCount
	}
	dst, src, x, y, w, h := args[0], args[1], args[2], args[3], args[4], args[5]

	allLiteral := x.Kind == operand.Literal && y.Kind == operand.Literal &&
		w.Kind == operand.Literal && h.Kind == operand.Literal

	switch {
	case dst.Kind == operand.IntReg && src.Kind == operand.Literal && allLiteral:
		b := append([]byte{0xA0}, longField(src)...)
		b = append(b, dst.Reg)
		b = append(b, field2(h)...)
		b = append(b, field2(w)...)
		b = append(b, field2(x)...)
		b = append(b, field2(y)...)
		return Result{Bytes: b}, nil

	case dst.Kind == operand.IntReg && src.Kind == operand.Symbol && allLiteral:
		b := append([]byte{0xA0}, placeholder4...)
		b = append(b, dst.Reg)
		b = append(b, field2(h)...)
		b = append(b, field2(w)...)
		b = append(b, field2(x)...)
		b = append(b, field2(y)...)
		return Result{Bytes: b, Control: NeedsDataFixup, Symbol: src.Name}, nil

	case dst.Kind == operand.IntReg && src.Kind == operand.IntReg &&
		x.Kind == operand.IntReg && y.Kind == operand.IntReg &&
		w.Kind == operand.IntReg && h.Kind == operand.IntReg:
		return Result{Bytes: []byte{0xA1, src.Reg, dst.Reg, h.Reg, w.Reg, x.Reg, y.Reg}}, nil

	default:
		return Result{}, errBadArrangement
	}
}

// encodeDb packs an arbitrary number of literal operands' low bytes
// (slice[7:8]) back-to-back — the raw-data-bytes directive.
func encodeDb(args []operand.Operand) (Result, error) {
	b := make([]byte, 0, len(args))
	for _, a := range args {
		if a.Kind != operand.Literal {
			return Result{}, expect("literal", a)
		}
		b = append(b, shortLen(a))
	}
	return Result{Bytes: b}, nil
}
