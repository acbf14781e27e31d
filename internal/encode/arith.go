package encode

import "github.com/toby1364/vm64asm/internal/operand"

// arithEncoder builds the encoder for add/sub/mul/div/mod: three operands
// of the same register family (all int or all float), encoded as
// [opcode, dest, reg, n].
func arithEncoder(opInt, opFloat byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		if len(args) != 3 {
			return Result{}, errWrongArgCount
		}
		dest := args[0]
		var float bool
		switch dest.Kind {
		case operand.IntReg:
		case operand.FloatReg:
			float = true
		default:
			return Result{}, expect("floating point register or register", dest)
		}

		reg := args[1]
		switch reg.Kind {
		case operand.IntReg:
			if float {
				return Result{}, errMismatchedRegs
			}
		case operand.FloatReg:
			if !float {
				return Result{}, errMismatchedRegs
			}
		default:
			return Result{}, expect("floating point register or register", reg)
		}

		n := args[2]
		switch n.Kind {
		case operand.IntReg:
			if float {
				return Result{}, errMismatchedRegs
			}
			return Result{Bytes: []byte{opInt, dest.Reg, reg.Reg, n.Reg}}, nil
		case operand.FloatReg:
			if !float {
				return Result{}, errMismatchedRegs
			}
			return Result{Bytes: []byte{opFloat, dest.Reg, reg.Reg, n.Reg}}, nil
		default:
			return Result{}, expect("floating point register or register", n)
		}
	}
}

// intOnlyTriadEncoder builds the encoder for shl/shr/and/or/xor: three int
// register operands encoded as [opcode, dest, reg, n].
func intOnlyTriadEncoder(opcode byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		if len(args) != 3 {
			return Result{}, errWrongArgCount
		}
		for _, a := range args {
			if a.Kind != operand.IntReg {
				return Result{}, expect("register", a)
			}
		}
		return Result{Bytes: []byte{opcode, args[0].Reg, args[1].Reg, args[2].Reg}}, nil
	}
}

// intRegUnaryEncoder builds the encoder for inc/dec/adc/sbc/gst/gpc: a
// single int register operand encoded as [opcode, reg].
func intRegUnaryEncoder(opcode byte) encodeFunc {
	return func(args []operand.Operand) (Result, error) {
		if len(args) != 1 {
			return Result{}, errWrongArgCount
		}
		if args[0].Kind != operand.IntReg {
			return Result{}, expect("register", args[0])
		}
		return Result{Bytes: []byte{opcode, args[0].Reg}}, nil
	}
}

// encodeNot takes two int registers: [0x3F, dest, src].
func encodeNot(args []operand.Operand) (Result, error) {
	if len(args) != 2 {
		return Result{}, errWrongArgCount
	}
	if args[0].Kind != operand.IntReg {
		return Result{}, expect("register", args[0])
	}
	if args[1].Kind != operand.IntReg {
		return Result{}, expect("register", args[1])
	}
	return Result{Bytes: []byte{0x3F, args[0].Reg, args[1].Reg}}, nil
}

// encodePsh pushes an int or float register: [0x42|0x43, reg].
func encodePsh(args []operand.Operand) (Result, error) {
	if len(args) != 1 {
		return Result{}, errWrongArgCount
	}
	switch args[0].Kind {
	case operand.IntReg:
		return Result{Bytes: []byte{0x42, args[0].Reg}}, nil
	case operand.FloatReg:
		return Result{Bytes: []byte{0x43, args[0].Reg}}, nil
	default:
		return Result{}, expect("floating point register or register", args[0])
	}
}

// encodePop pops into an int or float register: [0x44|0x45, reg].
func encodePop(args []operand.Operand) (Result, error) {
	if len(args) != 1 {
		return Result{}, errWrongArgCount
	}
	switch args[0].Kind {
	case operand.IntReg:
		return Result{Bytes: []byte{0x44, args[0].Reg}}, nil
	case operand.FloatReg:
		return Result{Bytes: []byte{0x45, args[0].Reg}}, nil
	default:
		return Result{}, expect("floating point register or register", args[0])
	}
}
