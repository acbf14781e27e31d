package layout

import (
	"fmt"
	"strings"
)

// Listing renders the annotated intermediate listing for -inter: one row
// per line (label rows omit the address column; data rows elide their
// middle bytes), column-aligned the way the reference's manual buf.push_str
// padding loop does.
func Listing(lines []EncodedLine, align uint64) string {
	var buf strings.Builder
	cursor := align

	for _, line := range lines {
		if line.Kind == KindDataPointer || line.Kind == KindImagePointer {
			continue
		}

		start := buf.Len()
		if line.Kind != KindLabel {
			fmt.Fprintf(&buf, "0x%08x:", cursor)
		}
		padTo(&buf, start+20)

		if line.Kind == KindData && len(line.Bytes) > 10 {
			for _, b := range line.Bytes[:5] {
				fmt.Fprintf(&buf, "%02x ", b)
			}
			buf.WriteString(". . . ")
			for _, b := range line.Bytes[len(line.Bytes)-5:] {
				fmt.Fprintf(&buf, "%02x ", b)
			}
		} else {
			for _, b := range line.Bytes {
				fmt.Fprintf(&buf, "%02x ", b)
			}
		}
		padTo(&buf, start+70)

		buf.WriteString(line.Head)
		buf.WriteByte(' ')
		for _, op := range line.Operands {
			buf.WriteString(op)
			buf.WriteByte(' ')
		}
		padTo(&buf, start+110)

		fmt.Fprintf(&buf, "%s:%d\n", line.FilePath, line.Line)

		cursor += uint64(len(line.Bytes))
	}

	return buf.String()
}

func padTo(buf *strings.Builder, width int) {
	for buf.Len() < width {
		buf.WriteByte(' ')
	}
}
