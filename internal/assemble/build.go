package assemble

import (
	"strings"

	"github.com/toby1364/vm64asm/internal/diagnostics"
	"github.com/toby1364/vm64asm/internal/encode"
	"github.com/toby1364/vm64asm/internal/layout"
	"github.com/toby1364/vm64asm/internal/operand"
	"github.com/toby1364/vm64asm/internal/sourceprep"
)

// BuildLines classifies and encodes every preprocessed line into the
// layout pass's EncodedLine record, recording a diagnostic (and leaving
// that line with zero bytes) for anything that fails to classify or
// encode.
func BuildLines(prepped []sourceprep.Line, diags *diagnostics.Bag) []layout.EncodedLine {
	lines := make([]layout.EncodedLine, 0, len(prepped))

	for _, pl := range prepped {
		loc := diagnostics.Loc(pl.FilePath, pl.Number)

		switch {
		case sourceprep.IsLabel(pl.Head):
			lines = append(lines, layout.EncodedLine{
				Kind:     layout.KindLabel,
				Head:     pl.Head,
				Operands: pl.Operands,
				FilePath: pl.FilePath,
				Line:     pl.Number,
			})

		case sourceprep.IsDirective(pl.Head):
			lines = append(lines, buildDirectiveLine(pl, loc, diags))

		default:
			lines = append(lines, buildInstructionLine(pl, loc, diags))
		}
	}

	return lines
}

func buildDirectiveLine(pl sourceprep.Line, loc diagnostics.Location, diags *diagnostics.Bag) layout.EncodedLine {
	base := layout.EncodedLine{Head: pl.Head, Operands: pl.Operands, FilePath: pl.FilePath, Line: pl.Number}

	switch sourceprep.DirectiveName(pl.Head) {
	case "image":
		if len(pl.Operands) < 2 {
			diags.Shape(loc, "invalid number of arguments").WithLine(rawLine(pl))
			return base
		}
		base.Kind = layout.KindImagePointer
		return base

	case "bytes":
		if len(pl.Operands) < 2 {
			diags.Shape(loc, "invalid number of arguments").WithLine(rawLine(pl))
			return base
		}
		base.Kind = layout.KindDataPointer
		return base

	default:
		diags.Parse(loc, "unknown assembler command").WithLine(rawLine(pl))
		return base
	}
}

func buildInstructionLine(pl sourceprep.Line, loc diagnostics.Location, diags *diagnostics.Bag) layout.EncodedLine {
	base := layout.EncodedLine{Head: pl.Head, Operands: pl.Operands, FilePath: pl.FilePath, Line: pl.Number}

	args := make([]operand.Operand, 0, len(pl.Operands))
	for _, tok := range pl.Operands {
		o, err := operand.Classify(tok)
		if err != nil {
			diags.Parse(loc, err.Error()).WithLine(rawLine(pl))
			return base
		}
		args = append(args, o)
	}

	res, err := encode.Encode(pl.Head, args)
	if err != nil {
		diags.Parse(loc, err.Error()).WithLine(rawLine(pl))
		return base
	}

	base.Bytes = res.Bytes
	base.Symbol = res.Symbol
	switch res.Control {
	case encode.NeedsLabelFixup:
		base.Kind = layout.KindNeedsLabelFixup
	case encode.NeedsDataFixup:
		base.Kind = layout.KindNeedsDataFixup
	default:
		base.Kind = layout.KindInstruction
	}
	return base
}

func rawLine(pl sourceprep.Line) string {
	return strings.TrimSpace(pl.Head + " " + strings.Join(pl.Operands, " "))
}
